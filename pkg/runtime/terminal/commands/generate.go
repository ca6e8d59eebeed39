package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
	"github.com/de-tools/lytx-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/lytx-reports/pkg/services/config"
	"github.com/de-tools/lytx-reports/pkg/services/period"
	"github.com/de-tools/lytx-reports/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	reportDir     string
	accidentsFile string
	outputDir     string
	startDate     string
	endDate       string
	profile       string
	profilesPath  string
	noWrite       bool
	summary       bool
	rt            *Runtime
}

func NewGenerateCmd(rt *Runtime) *cobra.Command {
	gc := &GenerateCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the monthly events and accidents reports",
		Args:  cobra.NoArgs,
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.reportDir, "dir", "", "Directory containing the Lytx event exports (default reports/)")
	cmd.Flags().StringVar(&gc.accidentsFile, "accidents-file", "", "Name of the accident log inside the report directory")
	cmd.Flags().StringVar(&gc.outputDir, "out", "", "Directory the report files are written to")
	cmd.Flags().StringVar(&gc.startDate, "start", "", "Reporting period start, YYYY-MM-DD (default first day of last month)")
	cmd.Flags().StringVar(&gc.endDate, "end", "", "Reporting period end, YYYY-MM-DD (default last day of last month)")
	cmd.Flags().StringVar(&gc.profile, "profile", "", "Named profile from the profiles file")
	cmd.Flags().StringVar(&gc.profilesPath, "profiles", "", "Path to the profiles file (default $HOME/.lytxcfg)")
	cmd.Flags().BoolVar(&gc.noWrite, "no-write", false, "Build the reports without writing files")
	cmd.Flags().BoolVar(&gc.summary, "summary", false, "Print a summary table to stdout")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	settings, err := gc.resolveSettings(ctx)
	if err != nil {
		return err
	}

	start, err := period.ParseDate(gc.startDate)
	if err != nil {
		return err
	}
	end, err := period.ParseDate(gc.endDate)
	if err != nil {
		return err
	}
	p, err := period.Resolve(start, end, gc.rt.Now())
	if err != nil {
		return err
	}
	logger.Info().Str("period", p.String()).Msg("reporting period resolved")

	result, runErr := report.Run(ctx, report.Options{
		Directory:     settings.ReportDir,
		AccidentsFile: settings.AccidentsFile,
		Period:        p,
	})

	if !gc.noWrite {
		if err := gc.write(ctx, export.NewWriter(settings.OutputDir), result); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	if gc.summary {
		return gc.rt.Reporter.Handle(result.Summary())
	}
	return nil
}

// resolveSettings layers the selected profile and then explicit flags over
// the loaded settings.
func (gc *GenerateCmd) resolveSettings(ctx context.Context) (config.Settings, error) {
	settings := *gc.rt.Settings

	if gc.profile != "" {
		path := gc.profilesPath
		if path == "" {
			path = settings.ProfilesPath
		}
		if path == "" {
			path = config.DefaultProfilesPath()
		}

		registry, err := config.NewRegistry(path)
		if err != nil {
			return settings, fmt.Errorf("failed to create profile registry: %w", err)
		}
		profile, err := registry.GetProfile(ctx, gc.profile)
		if err != nil {
			return settings, err
		}
		settings.Apply(profile)
	}

	settings.Apply(domain.ReportProfile{
		ReportDir:     gc.reportDir,
		AccidentsFile: gc.accidentsFile,
		OutputDir:     gc.outputDir,
	})
	return settings, nil
}

func (gc *GenerateCmd) write(ctx context.Context, w *export.Writer, result *report.Result) error {
	logger := zerolog.Ctx(ctx)

	if result.Events != nil {
		path, err := w.WriteEvents(result.Events.Period, result.Events.Rows)
		if err != nil {
			return fmt.Errorf("failed to save events report: %w", err)
		}
		logger.Info().Str("path", path).Int("drivers", len(result.Events.Rows)).Msg("saved events report")
	}

	if result.Accidents == nil {
		return nil
	}
	path, err := w.WriteAccidents(result.Accidents.Period, result.Accidents.Rows)
	if err != nil {
		return fmt.Errorf("failed to save accidents report: %w", err)
	}
	logger.Info().Str("path", path).Int("drivers", len(result.Accidents.Rows)).Msg("saved accidents report")
	return nil
}
