package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRuntimesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "runtimes",
		Short: "List installed CLR runtime versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireRuntime(); err != nil {
				return err
			}

			versions, err := app.locator.InstalledVersions()
			if err != nil {
				return err
			}
			if len(versions) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no CLR runtimes installed")
				return err
			}
			for _, version := range versions {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), version); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
