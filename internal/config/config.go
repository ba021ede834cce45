// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads and validates the enumerated configuration surface
// spec.md §6 names, via viper (env vars prefixed REPOMAPCTX_, an optional
// YAML config file, and cobra-bound flags). Grounded on the teacher's
// cmd/go-coder/main.go viper wiring (BindPFlag per flag, SetEnvPrefix,
// AutomaticEnv, optional config file read with the error ignored).
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/petar-djukic/repomapctx/internal/format"
	"github.com/petar-djukic/repomapctx/internal/ingest"
	"github.com/petar-djukic/repomapctx/internal/repomap"
	"github.com/petar-djukic/repomapctx/internal/transform"
	"github.com/petar-djukic/repomapctx/internal/walker"
	"github.com/petar-djukic/repomapctx/pkg/types"
)

// EnvPrefix is the environment-variable namespace for all config overrides
// (e.g. REPOMAPCTX_MODEL, REPOMAPCTX_FORMAT).
const EnvPrefix = "REPOMAPCTX"

// Config is the fully-resolved, validated configuration for one run,
// spanning every option spec.md §6 enumerates.
type Config struct {
	Format      format.Kind
	Model       types.Model
	Compression transform.Level

	MapBudget  int
	MaxSymbols int
	MaxTokens  int
	FullRank   bool

	IncludeHidden     bool
	RespectGitignore  bool
	ReadContents      bool
	SkipSymbols       bool
	IncludeTests      bool
	IncludeDocs       bool
	UseDefaultIgnores bool

	IncludePatterns []string
	ExcludePatterns []string

	ShowLineNumbers        bool
	ShowFileSummary        bool
	ShowDirectoryStructure bool
	TruncateBase64         bool
	RemoveComments         bool
	RemoveEmptyLines       bool

	TopFiles int
}

var validFormats = map[string]format.Kind{
	"xml": format.KindXML, "markdown": format.KindMarkdown, "json": format.KindJSON,
	"yaml": format.KindYAML, "toon": format.KindTOON, "plain": format.KindPlain,
}

var validModels = map[string]types.Model{
	"claude": types.ModelClaude, "gpt-4o": types.ModelGPT4o, "gpt-4": types.ModelGPT4,
	"gemini": types.ModelGemini, "llama": types.ModelLlama,
}

var validCompression = map[string]transform.Level{
	"none": transform.LevelNone, "minimal": transform.LevelMinimal, "balanced": transform.LevelBalanced,
	"aggressive": transform.LevelAggressive, "extreme": transform.LevelExtreme, "semantic": transform.LevelSemantic,
}

// Defaults returns the CLI defaults spec.md §6 names (max_tokens defaults
// to 100000 for the CLI; library callers pass 0 for unlimited explicitly).
func Defaults() Config {
	return Config{
		Format:                 format.KindXML,
		Model:                  types.ModelClaude,
		Compression:            transform.LevelBalanced,
		MapBudget:              repomap.DefaultTokenBudget,
		MaxSymbols:             repomap.DefaultMaxSymbols,
		MaxTokens:              100000,
		RespectGitignore:       true,
		ReadContents:           true,
		UseDefaultIgnores:      true,
		ShowLineNumbers:        true,
		ShowFileSummary:        true,
		ShowDirectoryStructure: true,
		TruncateBase64:         true,
	}
}

// FromViper resolves a Config from v, applying Defaults() first so unset
// keys fall back sanely, then validating every enumerated option. Unknown
// enum values are rejected, per spec.md §6's "unrecognized options are
// rejected."
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Defaults()

	if s := v.GetString("format"); s != "" {
		kind, ok := validFormats[s]
		if !ok {
			return Config{}, fmt.Errorf("config: unrecognized format %q", s)
		}
		cfg.Format = kind
	}
	if s := v.GetString("model"); s != "" {
		model, ok := validModels[s]
		if !ok {
			return Config{}, fmt.Errorf("config: unrecognized model %q", s)
		}
		cfg.Model = model
	}
	if s := v.GetString("compression"); s != "" {
		level, ok := validCompression[s]
		if !ok {
			return Config{}, fmt.Errorf("config: unrecognized compression %q", s)
		}
		cfg.Compression = level
	}

	if v.IsSet("map_budget") {
		cfg.MapBudget = v.GetInt("map_budget")
	}
	if v.IsSet("max_symbols") {
		cfg.MaxSymbols = v.GetInt("max_symbols")
	}
	if v.IsSet("max_tokens") {
		cfg.MaxTokens = v.GetInt("max_tokens")
	}
	if v.IsSet("top_files") {
		cfg.TopFiles = v.GetInt("top_files")
	}
	if v.IsSet("full_rank") {
		cfg.FullRank = v.GetBool("full_rank")
	}

	for key, dst := range map[string]*bool{
		"include_hidden":           &cfg.IncludeHidden,
		"respect_gitignore":        &cfg.RespectGitignore,
		"read_contents":            &cfg.ReadContents,
		"skip_symbols":             &cfg.SkipSymbols,
		"include_tests":            &cfg.IncludeTests,
		"include_docs":             &cfg.IncludeDocs,
		"use_default_ignores":      &cfg.UseDefaultIgnores,
		"show_line_numbers":        &cfg.ShowLineNumbers,
		"show_file_summary":        &cfg.ShowFileSummary,
		"show_directory_structure": &cfg.ShowDirectoryStructure,
		"truncate_base64":          &cfg.TruncateBase64,
		"remove_comments":          &cfg.RemoveComments,
		"remove_empty_lines":       &cfg.RemoveEmptyLines,
	} {
		if v.IsSet(key) {
			*dst = v.GetBool(key)
		}
	}

	if v.IsSet("include_patterns") {
		cfg.IncludePatterns = v.GetStringSlice("include_patterns")
	}
	if v.IsSet("exclude_patterns") {
		cfg.ExcludePatterns = v.GetStringSlice("exclude_patterns")
	}

	opts := transform.OptionsForLevel(cfg.Compression)
	if !v.IsSet("truncate_base64") {
		cfg.TruncateBase64 = opts.TruncateBase64
	}
	if !v.IsSet("remove_comments") {
		cfg.RemoveComments = opts.RemoveComments
	}
	if !v.IsSet("remove_empty_lines") {
		cfg.RemoveEmptyLines = opts.RemoveEmptyLines
	}

	return cfg, nil
}

// WalkerConfig derives the ingestor's walker.Config from the resolved
// Config.
func (c Config) WalkerConfig() walker.Config {
	return walker.Config{
		IncludeHidden:     c.IncludeHidden,
		RespectGitignore:  c.RespectGitignore,
		UseDefaultIgnores: c.UseDefaultIgnores,
		IncludePatterns:   c.IncludePatterns,
		ExcludePatterns:   c.ExcludePatterns,
	}
}

// IngestConfig derives the ingestor's Config from the resolved Config.
func (c Config) IngestConfig() ingest.Config {
	return ingest.Config{
		Walker:      c.WalkerConfig(),
		ReadContent: c.ReadContents,
		SkipSymbols: c.SkipSymbols,
	}
}
