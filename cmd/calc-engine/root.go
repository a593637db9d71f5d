package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aufin/calc-engine/internal/config"
	"github.com/aufin/calc-engine/internal/output"
)

type rootOptions struct {
	logLevel     string
	logFormat    string
	outputFormat string
	taxYearFile  string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "calc-engine",
		Short:         "Australian personal finance calculators",
		Long:          "Pay withholding, loan amortisation, borrowing capacity and loan comparison calculators for Australian financial years.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "log format (console, json)")
	cmd.PersistentFlags().StringVarP(&opts.outputFormat, "output", "o", "console", "output format (console, csv, json)")
	cmd.PersistentFlags().StringVar(&opts.taxYearFile, "taxyears", "", "override the built-in tax year tables with a YAML file")

	cmd.AddCommand(
		newPayCommand(opts),
		newLoanCommand(opts),
		newBorrowCommand(opts),
		newCompareCommand(opts),
		newServeCommand(opts),
		newYearsCommand(opts),
	)
	return cmd
}

func (o *rootOptions) logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(o.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", o.logLevel)
	}

	cfg := zap.NewProductionConfig()
	if o.logFormat == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else if o.logFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q", o.logFormat)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func (o *rootOptions) registry() (*config.Registry, error) {
	if o.taxYearFile != "" {
		return config.LoadRegistryFromFile(o.taxYearFile)
	}
	return config.LoadDefaultRegistry()
}

func (o *rootOptions) formatter() (output.Formatter, error) {
	return output.NewFormatter(o.outputFormat)
}
