package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/lytx-reports/pkg/runtime/terminal/commands"
	"github.com/de-tools/lytx-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/lytx-reports/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	runtime   *commands.Runtime
	logOutput io.Writer
	rootCmd   *cobra.Command

	configPath string
	logLevel   string
	logFormat  string
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	LogOutput io.Writer
	Now       func() time.Time
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cli := &CLI{
		runtime: &commands.Runtime{
			Reporter: export.NewReporter(opts.Output),
			Now:      opts.Now,
		},
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args for the next Execute.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "lytx-reports",
		Short:             "Monthly driver safety reports from Lytx exports",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to a settings file (yaml, toml or json)")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&cli.logFormat, "log-format", "", "Log format (json or console)")

	cmd.AddCommand(commands.NewGenerateCmd(cli.runtime))
	cmd.AddCommand(commands.NewPeriodCmd(cli.runtime))
	cmd.AddCommand(commands.NewProfilesCmd(cli.runtime))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(cli.configPath)
	if err != nil {
		return err
	}
	if cli.logLevel != "" {
		settings.LogLevel = cli.logLevel
	}
	if cli.logFormat != "" {
		settings.LogFormat = cli.logFormat
	}

	logger, err := newLogger(cli.logOutput, settings.LogLevel, settings.LogFormat)
	if err != nil {
		return err
	}
	cli.runtime.Settings = settings

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx))
	return nil
}

func newLogger(out io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
