package commands

import (
	"fmt"

	"github.com/de-tools/lytx-reports/pkg/models/domain"
	"github.com/de-tools/lytx-reports/pkg/services/period"
	"github.com/spf13/cobra"
)

type PeriodCmd struct {
	date string
	rt   *Runtime
}

func NewPeriodCmd(rt *Runtime) *cobra.Command {
	pc := &PeriodCmd{rt: rt}
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Print the default reporting period",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.date, "date", "", "Reference date, YYYY-MM-DD (default today)")

	return cmd
}

func (pc *PeriodCmd) run(cmd *cobra.Command, _ []string) error {
	ref := pc.rt.Now()
	date, err := period.ParseDate(pc.date)
	if err != nil {
		return err
	}
	if date != nil {
		ref = *date
	}

	p := period.Default(ref)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", p.Start.Format(domain.DateLayout), p.End.Format(domain.DateLayout))
	return nil
}
