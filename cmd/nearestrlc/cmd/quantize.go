package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/msto63/nearestrlc/pkg/engnotation"
	"github.com/msto63/nearestrlc/pkg/eseries"
)

type quantizeOptions struct {
	tol    string
	series string
	unit   string
	digits int
	all    bool
	plain  bool
}

func newQuantizeCmd(a *app) *cobra.Command {
	opts := &quantizeOptions{}

	quantizeCmd := &cobra.Command{
		Use:   "quantize VALUE...",
		Short: "Quantize values to the nearest preferred value",
		Long: `Quantizes each VALUE to the nearest preferred value of the selected
tolerance class or inventory series.

Examples:
  nearestrlc quantize 4990 --tol 2p0        # 4.87 kΩ
  nearestrlc quantize 3k3 100nF --tol E12
  nearestrlc quantize 7404 --all            # one row per tolerance class
  nearestrlc quantize 3500 --series drawer  # parts from the config inventory`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runQuantize(cmd, opts, args)
		},
	}

	quantizeCmd.Flags().StringVarP(&opts.tol, "tol", "t", "", "tolerance class (exact, 20p0, 10p0, 5p0, 2p0, 1p0, 0p5, E24, 5%)")
	quantizeCmd.Flags().StringVarP(&opts.series, "series", "s", "", "inventory series from the config file")
	quantizeCmd.Flags().StringVarP(&opts.unit, "unit", "u", "", "unit for the output (default: from value or config)")
	quantizeCmd.Flags().IntVarP(&opts.digits, "digits", "d", 0, "significant digits in the output")
	quantizeCmd.Flags().BoolVarP(&opts.all, "all", "a", false, "quantize against every tolerance class")
	quantizeCmd.Flags().BoolVar(&opts.plain, "plain", false, "print bare numbers, one per line")
	quantizeCmd.MarkFlagsMutuallyExclusive("all", "series")
	quantizeCmd.MarkFlagsMutuallyExclusive("all", "tol")

	return quantizeCmd
}

func (a *app) runQuantize(cmd *cobra.Command, opts *quantizeOptions, args []string) error {
	targets := []target{}
	if opts.all {
		for _, tol := range eseries.Tolerances() {
			targets = append(targets, toleranceTarget(tol))
		}
	} else {
		t, err := a.resolveTarget(opts.tol, opts.series)
		if err != nil {
			return err
		}
		targets = append(targets, t)
	}

	out := cmd.OutOrStdout()
	digits := a.digits(opts.digits)

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(resultHeader)

	for i, arg := range args {
		value, parsedUnit, err := engnotation.ParseWithUnit(arg)
		if err != nil {
			return err
		}
		unit := a.unit(opts.unit, parsedUnit)

		if i > 0 && len(targets) > 1 {
			tw.AppendSeparator()
		}
		for _, t := range targets {
			r, err := a.quantizeOne(arg, value, t)
			if err != nil {
				return err
			}
			if opts.plain {
				fmt.Fprintln(out, r.Quantized)
				continue
			}
			tw.AppendRow(resultRow(r, unit, digits))
		}
	}

	if !opts.plain {
		tw.Render()
	}
	return nil
}
