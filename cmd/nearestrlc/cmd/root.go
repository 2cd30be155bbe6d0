package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/nearestrlc/internal/config"
	rlcerror "github.com/msto63/nearestrlc/internal/core/error"
	rlclog "github.com/msto63/nearestrlc/internal/core/log"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg *config.Config
	log *rlclog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "nearestrlc",
		Short: "Quantize component values to E-series preferred values",
		Long: `nearestrlc replaces an ideal resistance, capacitance or inductance with
the nearest standard value of the E-series matching its tolerance class.

Tolerance classes:
  exact  - no quantization
  20p0   - E6   (20 %)
  10p0   - E12  (10 %)
  5p0    - E24  (5 %)
  2p0    - E48  (2 %)
  1p0    - E96  (1 %)
  0p5    - E192 (0.5 %)

Values accept engineering notation: 4700, 4.7k, 4k7, 100nF, 2u2, 1M5.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $NEARESTRLC_CONFIG or ./nearestrlc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json or console")

	rootCmd.AddCommand(
		newQuantizeCmd(a),
		newSeriesCmd(a),
		newBatchCmd(a),
		newVersionCmd(),
	)

	return rootCmd, a
}

// Execute runs the CLI and reports a failing command on stderr.
func Execute() error {
	rootCmd, a := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if a.log != nil {
			a.log.LogError(err)
		}
		printError(rootCmd, err)
		return err
	}
	return nil
}

// setup loads the configuration and builds the logger for this run
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logCfg := a.cfg.LogConfig()
	logCfg.Output = cmd.ErrOrStderr()
	if a.logFormat != "" {
		if logCfg.Format, err = rlclog.ParseFormat(a.logFormat); err != nil {
			return rlcerror.Wrap(err, "invalid --log-format").
				WithCode(rlcerror.CodeInvalidInput).
				WithDetail("flag", "log-format")
		}
	}
	if a.verbose {
		logCfg.Level = rlclog.LevelDebug
	}

	a.log = rlclog.NewWithConfig(logCfg).WithName(cmd.Name())
	a.log.Debug("configuration loaded", rlclog.Fields{
		"file":   a.cfg.FilePath(),
		"format": a.cfg.Format().String(),
	})
	return nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
