package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "clrhost",
		Short:         "clrhost: run .NET assemblies from memory inside this process",
		Long:          "clrhost loads the .NET CLR into the current process and executes an assembly straight from a byte buffer, with optional console capture and Environment.Exit neutralization.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newIdentityCmd(app),
		newRuntimesCmd(app),
		newProfilesCmd(app),
	)

	return rootCmd
}
