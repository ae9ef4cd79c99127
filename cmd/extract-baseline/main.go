// Package main provides the CLI entry point for extract-baseline.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fedretire/extract-baseline/pkg/baseline"
)

// version is set at build time via ldflags.
var version = "dev"

// app holds state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "extract-baseline",
		Short: "Extract baseline expected values from Retire-original.xlsx",
		Long: `extract-baseline reads reference values for one scenario from the legacy
retirement-planning workbook and merges them into the JSON baseline used by
the spreadsheet parity tests. Other scenarios already in the baseline are
left untouched.

Examples:
  extract-baseline
  extract-baseline --scenario gs-straight-through --output app/tests/scenarios/fixtures/baseline.json
  extract-baseline --mapping scripts/gs-cells.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE: a.run,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./extract-baseline.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every cell read")
	rootCmd.PersistentFlags().String("spreadsheet", baseline.DefaultSpreadsheet, "Path to spreadsheet")

	rootCmd.Flags().String("scenario", baseline.DefaultScenario, "Scenario to extract")
	rootCmd.Flags().String("output", baseline.DefaultOutput, "Output JSON file")
	rootCmd.Flags().String("mapping", "", "YAML file binding expected values to cells")

	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newScenariosCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// initConfig reads the optional config file. Values given on the command
// line take precedence over the file.
func (a *app) initConfig() error {
	if a.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("extract-baseline")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}
	logrus.WithField("config", a.v.ConfigFileUsed()).Info("using config file")
	return nil
}

// options merges defaults, config file values and flags.
func (a *app) options(cmd *cobra.Command) (baseline.Options, error) {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return baseline.Options{}, err
	}

	opts := baseline.DefaultOptions()
	if err := a.v.Unmarshal(&opts); err != nil {
		return baseline.Options{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return opts, nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	opts, err := a.options(cmd)
	if err != nil {
		return err
	}
	return baseline.Run(opts, baseline.DefaultRegistry(), cmd.OutOrStdout())
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
