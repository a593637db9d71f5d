package main

import (
	"github.com/spf13/cobra"
)

func newYearsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the available tax years",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.registry()
			if err != nil {
				return err
			}
			for _, id := range registry.IDs() {
				cmd.Println(id)
			}
			return nil
		},
	}
}
