// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/database"
)

func newSeedCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load development content into an empty document store",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := openDocstore(cmd.Context(), cfg())
			if err != nil {
				return err
			}
			defer docs.Close()
			return database.Seed(cmd.Context(), docs)
		},
	}
}
