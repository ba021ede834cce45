// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command repomapctx packages a repository into an LLM-consumable context
// document. Grounded on the teacher's cmd/go-coder/main.go cobra+viper
// wiring (persistent flags bound to viper, REPOMAPCTX_ env prefix,
// optional YAML config file read with the error ignored).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/repomapctx/internal/config"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "repomapctx",
		Short: "Package a repository into an LLM context document",
		Long:  "repomapctx walks a repository, ranks its files and symbols by structural importance, and emits a single bounded-token context document in XML, Markdown, JSON, YAML, TOON, or plain text.",
	}

	rootCmd.PersistentFlags().String("format", "xml", "Output format: xml|markdown|json|yaml|toon|plain")
	rootCmd.PersistentFlags().String("model", "claude", "Target model: claude|gpt-4o|gpt-4|gemini|llama")
	rootCmd.PersistentFlags().String("compression", "balanced", "Compression level: none|minimal|balanced|aggressive|extreme|semantic")
	rootCmd.PersistentFlags().Int("map-budget", 2000, "Token budget for the repository map")
	rootCmd.PersistentFlags().Int("max-symbols", 50, "Maximum ranked symbols in the repository map")
	rootCmd.PersistentFlags().Int("max-tokens", 100000, "Hard token ceiling for the rendered document; 0 disables")
	rootCmd.PersistentFlags().Bool("full-rank", false, "Use the symbol-graph PageRank importance model instead of the heuristic ranker")
	rootCmd.PersistentFlags().Bool("include-hidden", false, "Include dotfiles and hidden directories")
	rootCmd.PersistentFlags().Bool("respect-gitignore", true, "Honor .gitignore patterns")
	rootCmd.PersistentFlags().Bool("show-line-numbers", true, "Prefix code lines with line numbers")

	flagToKey := map[string]string{
		"format":            "format",
		"model":             "model",
		"compression":       "compression",
		"map-budget":        "map_budget",
		"max-symbols":       "max_symbols",
		"max-tokens":        "max_tokens",
		"full-rank":         "full_rank",
		"include-hidden":    "include_hidden",
		"respect-gitignore": "respect_gitignore",
		"show-line-numbers": "show_line_numbers",
	}
	for flag, key := range flagToKey {
		viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	viper.SetConfigName(".repomapctx")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // optional; absence is not an error

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print repomapctx version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("repomapctx %s\n", version)
		},
	}
}
