package commands

import (
	"time"

	"github.com/de-tools/lytx-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/lytx-reports/pkg/services/config"
)

// Runtime is the state shared by all commands of one invocation. Settings is
// populated by the root command before any subcommand runs.
type Runtime struct {
	Settings *config.Settings
	Reporter *export.Reporter
	Now      func() time.Time
}
