package main

import (
	"github.com/spf13/cobra"

	"github.com/msomdec/anime-service/internal/fixtures"
)

func fixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Print the configured fixture set as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := fixtures.Load(cfg.Fixtures.Path)
			if err != nil {
				return err
			}
			data, err := set.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
