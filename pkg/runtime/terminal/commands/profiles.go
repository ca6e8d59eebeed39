package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/lytx-reports/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	profilesPath string
	rt           *Runtime
}

func NewProfilesCmd(rt *Runtime) *cobra.Command {
	pc := &ProfilesCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List report profiles",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profilesPath, "profiles", "", "Path to the profiles file (default $HOME/.lytxcfg)")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	path := pc.profilesPath
	if path == "" {
		path = pc.rt.Settings.ProfilesPath
	}
	if path == "" {
		path = config.DefaultProfilesPath()
	}

	registry, err := config.NewRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", path)
		return nil
	}

	var lines []string
	for _, name := range profiles {
		profile, err := registry.GetProfile(ctx, name)
		if err != nil {
			return err
		}
		lines = append(lines, profile.String())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n%s\n", path, strings.Join(lines, "\n"))
	return nil
}
