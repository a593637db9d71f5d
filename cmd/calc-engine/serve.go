package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aufin/calc-engine/internal/server"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over a JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetEnvPrefix("AUFIN")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			v.SetDefault("addr", ":8080")
			if err := v.BindPFlag("addr", cmd.Flags().Lookup("addr")); err != nil {
				return err
			}

			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			registry, err := opts.registry()
			if err != nil {
				return err
			}

			return server.New(logger, registry).ListenAndServe(v.GetString("addr"))
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address (also AUFIN_ADDR)")
	return cmd
}
