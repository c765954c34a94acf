package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clrhost-cli/internal/domain"
)

func newIdentityCmd(app *app) *cobra.Command {
	var runtimeFlag string

	cmd := &cobra.Command{
		Use:   "identity <assembly.exe>",
		Short: "Print the CLR binding identity of an assembly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := domain.ParseRuntimeVersion(runtimeFlag)
			if err != nil {
				return err
			}

			image, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read assembly: %w", err)
			}
			if err := domain.ValidateImage(image); err != nil {
				return err
			}

			if err := app.requireRuntime(); err != nil {
				return err
			}

			info, err := app.locator.Resolve(version)
			if err != nil {
				return err
			}
			manager, err := info.IdentityManager()
			if err != nil {
				return err
			}
			identity, err := manager.IdentityFromImage(image)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), identity)
			return err
		},
	}

	cmd.Flags().StringVar(&runtimeFlag, "runtime", "v4", "CLR runtime version (v2, v3, v4)")

	return cmd
}
