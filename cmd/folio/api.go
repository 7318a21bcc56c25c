// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/restapi"
)

// newAPICmd groups the commands that talk to the REST backend.
func newAPICmd(cfg func() *config.Config) *cobra.Command {
	var baseURL, token string

	cmd := &cobra.Command{
		Use:   "api",
		Short: "Query the REST backend",
	}
	cmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "backend base URL (default API_BASE_URL)")
	cmd.PersistentFlags().StringVar(&token, "token", os.Getenv("API_TOKEN"), "auth token")

	client := func() *restapi.Client {
		url := baseURL
		if url == "" {
			url = cfg().APIBaseURL
		}
		return restapi.New(url, restapi.WithToken(token))
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "achievements",
			Short: "List achievements",
			RunE: func(cmd *cobra.Command, args []string) error {
				items, err := client().Achievements().List(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), items)
			},
		},
		&cobra.Command{
			Use:   "products",
			Short: "List products",
			RunE: func(cmd *cobra.Command, args []string) error {
				items, err := client().Products().List(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), items)
			},
		},
		&cobra.Command{
			Use:   "posts",
			Short: "List blog posts",
			RunE: func(cmd *cobra.Command, args []string) error {
				items, err := client().BlogPosts().List(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), items)
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show backend statistics",
			RunE: func(cmd *cobra.Command, args []string) error {
				stats, err := client().Stats(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), stats)
			},
		},
		newAPILoginCmd(client),
		newAPIResumeCmd(client),
	)
	return cmd
}

func newAPILoginCmd(client func() *restapi.Client) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a token and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := client().Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "account name")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAPIResumeCmd(client func() *restapi.Client) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Download the resume file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client().DownloadResume(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write resume: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "resume.pdf", `destination file, "-" for stdout`)
	return cmd
}
