// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/repomapctx/internal/config"
	"github.com/petar-djukic/repomapctx/pkg/repomap"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Generate a context document for a repository",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGenerate,
	}
	cmd.Flags().StringP("output", "o", "", "Write the document to this path instead of stdout")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	mode := repomap.ModeHeuristic
	if cfg.FullRank {
		mode = repomap.ModeFull
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := repomap.Run(ctx, root, repomap.Options{
		Format:                 cfg.Format,
		Model:                  cfg.Model,
		Compression:            cfg.Compression,
		Mode:                   mode,
		MapBudget:              cfg.MapBudget,
		MaxSymbols:             cfg.MaxSymbols,
		MaxTokens:              cfg.MaxTokens,
		Ingest:                 cfg.IngestConfig(),
		ShowLineNumbers:        cfg.ShowLineNumbers,
		ShowFileSummary:        cfg.ShowFileSummary,
		ShowDirectoryStructure: cfg.ShowDirectoryStructure,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), result.Document)
		return nil
	}
	return os.WriteFile(output, []byte(result.Document), 0o644)
}
