// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package main generates a static PEP 503 simple repository index from the
// wheel assets attached to a repository's releases.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/simpleindex/internal/httpx"
	"github.com/google/simpleindex/pkg/index"
	"github.com/google/simpleindex/pkg/registry/github"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	defaultRepo      = "drav-ai/pypi"
	defaultOutputDir = "simple"
	userAgent        = "simpleindex"
)

var (
	repo      string
	outputDir string
	token     string
)

var green = color.New(color.FgGreen).SprintFunc()

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var rootCmd = &cobra.Command{
	Use:   "simpleindex [--repo <owner/repo>] [--output-dir <dir>] [--token <token>]",
	Short: "Generate a static PEP 503 package index from release assets.",
	// Silence errors because we will print the error ourselves in main.
	SilenceErrors: true,
	// Don't show usage for every error.
	SilenceUsage: true,
	// RunE because we want errors to affect the return status.
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		registry := github.HTTPRegistry{
			Client: &httpx.WithUserAgent{
				BasicClient: &httpx.WithAuthToken{BasicClient: http.DefaultClient, Token: token},
				UserAgent:   userAgent,
			},
		}
		log.Printf("Fetching releases from %s...", repo)
		releases, err := registry.Releases(ctx, repo)
		if err != nil {
			return errors.Wrap(err, "fetching releases")
		}
		log.Printf("Found %d releases", len(releases))
		artifacts := index.ExtractArtifacts(ctx, registry, repo, releases)
		log.Printf("Found %d wheel files", len(artifacts))
		idx := index.Group(artifacts)
		log.Printf("Found %d unique packages", len(idx))
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return errors.Wrapf(err, "creating output directory %s", outputDir)
		}
		if err := index.WriteIndex(osfs.New(outputDir), idx); err != nil {
			return errors.Wrap(err, "writing index")
		}
		fmt.Fprintln(cmd.OutOrStdout(), green("Index generation complete"))
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&repo, "repo", envOr("GITHUB_REPOSITORY", defaultRepo), "repository in 'owner/repo' form whose releases are indexed")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", defaultOutputDir, "directory to which index files are written")
	rootCmd.Flags().StringVar(&token, "token", os.Getenv("GITHUB_TOKEN"), "access token for the release API (default: GITHUB_TOKEN env var)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
