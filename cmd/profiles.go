package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"clrhost-cli/internal/domain"
)

func newProfilesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage saved run profiles",
	}

	cmd.AddCommand(newProfilesListCmd(app), newProfilesSaveCmd(app))

	return cmd
}

func newProfilesListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved run profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.profiles.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no profiles saved")
				return err
			}
			for _, profile := range profiles {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), formatProfile(profile)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newProfilesSaveCmd(app *app) *cobra.Command {
	var (
		runtimeFlag string
		domainName  string
		redirect    bool
		patchExit   bool
		args        []string
	)

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a named run profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			version, err := domain.ParseRuntimeVersion(runtimeFlag)
			if err != nil {
				return err
			}

			return app.profiles.Save(cmd.Context(), domain.Profile{
				Name:           cmdArgs[0],
				Runtime:        version,
				DomainName:     domainName,
				Args:           args,
				RedirectOutput: redirect,
				PatchExit:      patchExit,
			})
		},
	}

	cmd.Flags().StringVar(&runtimeFlag, "runtime", "v4", "CLR runtime version (v2, v3, v4)")
	cmd.Flags().StringVar(&domainName, "domain", "", "AppDomain name (random when empty)")
	cmd.Flags().BoolVar(&redirect, "redirect", false, "Capture console output and print it on exit")
	cmd.Flags().BoolVar(&patchExit, "patch-exit", false, "Neutralize Environment.Exit before running")
	cmd.Flags().StringSliceVar(&args, "arg", nil, "Default assembly argument (repeatable)")

	return cmd
}

func formatProfile(profile domain.Profile) string {
	parts := []string{profile.Name, profile.Runtime.String()}
	if profile.DomainName != "" {
		parts = append(parts, "domain="+profile.DomainName)
	}
	if profile.RedirectOutput {
		parts = append(parts, "redirect")
	}
	if profile.PatchExit {
		parts = append(parts, "patch-exit")
	}
	if len(profile.Args) > 0 {
		parts = append(parts, "args="+strings.Join(profile.Args, " "))
	}
	return strings.Join(parts, "  ")
}
