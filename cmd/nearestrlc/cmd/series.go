package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	rlcerror "github.com/msto63/nearestrlc/internal/core/error"
	rlclog "github.com/msto63/nearestrlc/internal/core/log"
	"github.com/msto63/nearestrlc/pkg/engnotation"
	"github.com/msto63/nearestrlc/pkg/eseries"
)

type seriesOptions struct {
	decade int
	from   string
	to     string
	unit   string
	digits int
	plain  bool
}

func newSeriesCmd(a *app) *cobra.Command {
	opts := &seriesOptions{}

	seriesCmd := &cobra.Command{
		Use:   "series TOL|NAME",
		Short: "List the preferred values of a series",
		Long: `Lists the values of a built-in series (selected by tolerance class or
series name) or of an inventory series from the config file.

Without --from/--to one decade is listed, scaled by 10^--decade.

Examples:
  nearestrlc series E12                   # 1.0 ... 8.2
  nearestrlc series 5p0 --decade 3        # 1.00 kΩ ... 9.10 kΩ
  nearestrlc series 1p0 --from 4k --to 6k`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSeries(cmd, opts, args[0])
		},
	}

	seriesCmd.Flags().IntVar(&opts.decade, "decade", 0, "power of ten to scale the listed decade by")
	seriesCmd.Flags().StringVar(&opts.from, "from", "", "lower bound of a value range")
	seriesCmd.Flags().StringVar(&opts.to, "to", "", "upper bound of a value range")
	seriesCmd.Flags().StringVarP(&opts.unit, "unit", "u", "", "unit for the output")
	seriesCmd.Flags().IntVarP(&opts.digits, "digits", "d", 0, "significant digits in the output")
	seriesCmd.Flags().BoolVar(&opts.plain, "plain", false, "print bare numbers, one per line")
	seriesCmd.MarkFlagsRequiredTogether("from", "to")

	return seriesCmd
}

func (a *app) runSeries(cmd *cobra.Command, opts *seriesOptions, name string) error {
	s, err := a.lookupSeries(name)
	if err != nil {
		return err
	}

	var values []float64
	if opts.from != "" {
		lo, err := engnotation.Parse(opts.from)
		if err != nil {
			return err
		}
		hi, err := engnotation.Parse(opts.to)
		if err != nil {
			return err
		}
		if values, err = s.Span(lo, hi); err != nil {
			return err
		}
	} else {
		if opts.decade < -24 || opts.decade > 24 {
			return invalidFlag("decade", opts.decade, "must be within -24..24")
		}
		values = s.Decade(opts.decade)
	}

	a.log.Debug("series listed", rlclog.Fields{
		"series": s.Name(),
		"count":  len(values),
	})

	out := cmd.OutOrStdout()
	if opts.plain {
		for _, v := range values {
			fmt.Fprintln(out, v)
		}
		return nil
	}

	unit := a.unit(opts.unit, "")
	digits := a.digits(opts.digits)

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetTitle("%s", s.String())
	tw.AppendHeader(table.Row{"#", "VALUE"})
	for i, v := range values {
		tw.AppendRow(table.Row{i + 1, engnotation.Format(v, unit, digits)})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d values", len(values))})
	tw.Render()
	return nil
}

// lookupSeries resolves a tolerance label or series name first, then the
// inventory series of the configuration.
func (a *app) lookupSeries(name string) (*eseries.Series, error) {
	tol, err := eseries.ParseTolerance(name)
	if err == nil {
		if tol == eseries.Exact {
			return nil, rlcerror.New("tolerance class exact has no preferred values").
				WithCode(rlcerror.CodeInvalidTolerance).
				WithDetail("input", name)
		}
		return tol.Series(), nil
	}

	s, invErr := a.cfg.Series(name)
	if invErr != nil {
		return nil, err
	}
	return s, nil
}
