// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/store"
)

// contentKinds maps each printable collection to its reader.
var contentKinds = map[string]func(context.Context, *store.ContentStore) any{
	"achievements": func(ctx context.Context, s *store.ContentStore) any { return s.Achievements(ctx) },
	"experiences":  func(ctx context.Context, s *store.ContentStore) any { return s.Experiences(ctx) },
	"skills":       func(ctx context.Context, s *store.ContentStore) any { return s.Skills(ctx) },
	"education":    func(ctx context.Context, s *store.ContentStore) any { return s.Education(ctx) },
	"products":     func(ctx context.Context, s *store.ContentStore) any { return s.Products(ctx) },
	"featured":     func(ctx context.Context, s *store.ContentStore) any { return s.FeaturedProducts(ctx) },
	"about":        func(ctx context.Context, s *store.ContentStore) any { return s.AboutContent(ctx) },
	"personal":     func(ctx context.Context, s *store.ContentStore) any { return s.PersonalDetails(ctx) },
}

func contentKindNames() []string {
	names := make([]string, 0, len(contentKinds))
	for name := range contentKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newContentCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "content <kind>",
		Short:     "Print stored content as the site reads it",
		Long:      "Print stored content as JSON. Kinds: " + strings.Join(contentKindNames(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: contentKindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			read, ok := contentKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown content kind %q", args[0])
			}

			docs, err := openDocstore(cmd.Context(), cfg())
			if err != nil {
				return err
			}
			defer docs.Close()

			return printJSON(cmd.OutOrStdout(), read(cmd.Context(), store.NewContentStore(docs)))
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
