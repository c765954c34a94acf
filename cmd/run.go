package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clrhost-cli/internal/application"
	"clrhost-cli/internal/domain"
)

func newRunCmd(app *app) *cobra.Command {
	var (
		runtimeFlag string
		domainName  string
		redirect    bool
		patchExit   bool
		profileName string
	)

	cmd := &cobra.Command{
		Use:   "run <assembly.exe> [-- <args>...]",
		Short: "Execute a .NET assembly from memory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := application.Options{Logger: app.logger}

			if profileName != "" {
				saved, err := app.profiles.GetByName(cmd.Context(), profileName)
				if err != nil {
					return err
				}
				opts.Version = saved.Runtime
				opts.DomainName = saved.DomainName
				opts.RedirectOutput = saved.RedirectOutput
				opts.PatchExit = saved.PatchExit
				if len(args) == 1 {
					args = append(args, saved.Args...)
				}
			}

			// Explicit flags win over the profile.
			if cmd.Flags().Changed("runtime") || profileName == "" {
				version, err := domain.ParseRuntimeVersion(runtimeFlag)
				if err != nil {
					return err
				}
				opts.Version = version
			}
			if cmd.Flags().Changed("domain") || profileName == "" {
				opts.DomainName = domainName
			}
			if cmd.Flags().Changed("redirect") || profileName == "" {
				opts.RedirectOutput = redirect
			}
			if cmd.Flags().Changed("patch-exit") || profileName == "" {
				opts.PatchExit = patchExit
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

			host := application.NewHost(app.locator, app.patcher, app.releaser, opts)
			output, err := host.Run(cmd.Context(), image, args[1:])
			if err != nil {
				return err
			}

			if opts.RedirectOutput && output != "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&runtimeFlag, "runtime", "v4", "CLR runtime version (v2, v3, v4)")
	cmd.Flags().StringVar(&domainName, "domain", "", "AppDomain name (random when empty)")
	cmd.Flags().BoolVar(&redirect, "redirect", false, "Capture console output and print it on exit")
	cmd.Flags().BoolVar(&patchExit, "patch-exit", false, "Neutralize Environment.Exit before running")
	cmd.Flags().StringVar(&profileName, "profile", "", "Load run options from a saved profile")

	return cmd
}
