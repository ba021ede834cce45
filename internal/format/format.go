// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package format implements spec.md §4.8's six Formatters sharing a common
// (Repository, RepoMap) -> string contract. Grounded on
// _examples/original_source/engine/src/output/{mod.rs,xml.rs,markdown.rs,toon.rs}.
package format

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/repomapctx/internal/rank"
	"github.com/petar-djukic/repomapctx/pkg/types"
)

// Kind selects one of the six output shapes, per spec.md §6's format enum.
type Kind string

const (
	KindXML      Kind = "xml"
	KindMarkdown Kind = "markdown"
	KindJSON     Kind = "json"
	KindYAML     Kind = "yaml"
	KindTOON     Kind = "toon"
	KindPlain    Kind = "plain"
)

// Options controls cross-cutting rendering knobs shared by every formatter.
type Options struct {
	Model                  types.Model
	ShowLineNumbers        bool
	ShowFileSummary        bool
	ShowDirectoryStructure bool
}

// tokensFor returns a file's token count for opts.Model, defaulting to the
// Claude estimate when no model was specified.
func tokensFor(tc types.TokenCounts, model types.Model) uint32 {
	if model == "" {
		return tc.Claude
	}
	return tc.Get(model)
}

// Formatter renders a Repository and its RepoMap to a single document
// string.
type Formatter interface {
	Format(repo *types.Repository, rm *types.RepoMap, opts Options) string
	Name() string
}

// ByKind returns the Formatter for kind, defaulting to XML for an unknown
// kind (config validation rejects unknown kinds upstream; this is a safe
// fallback for direct callers).
func ByKind(kind Kind) Formatter {
	switch kind {
	case KindMarkdown:
		return MarkdownFormatter{}
	case KindJSON:
		return JSONFormatter{}
	case KindYAML:
		return YAMLFormatter{}
	case KindTOON:
		return TOONFormatter{}
	case KindPlain:
		return PlainFormatter{}
	default:
		return XMLFormatter{}
	}
}

// detectProjectType implements spec.md §4.8's XML-overview project-type
// heuristic, grounded on original_source/engine/src/output/xml.rs's
// detect_project_type (manifest presence plus a routes/components
// sub-heuristic for web frameworks).
func detectProjectType(repo *types.Repository) string {
	has := func(name string) bool {
		for _, f := range repo.Files {
			if f.RelativePath == name {
				return true
			}
		}
		return false
	}
	hasSuffix := func(suffix string) bool {
		for _, f := range repo.Files {
			if strings.HasSuffix(f.RelativePath, suffix) {
				return true
			}
		}
		return false
	}
	hasSegment := func(segs ...string) bool {
		for _, f := range repo.Files {
			for _, seg := range segs {
				if strings.Contains(f.RelativePath, seg) {
					return true
				}
			}
		}
		return false
	}

	hasRoutes := hasSegment("routes", "api/")
	hasComponents := hasSegment("components/", "views/")

	switch {
	case has("Cargo.toml"):
		if hasSuffix("lib.rs") {
			return "Rust Library"
		}
		return "Rust Application"
	case has("package.json"):
		switch {
		case hasComponents:
			return "Frontend Application (JavaScript/TypeScript)"
		case hasRoutes:
			return "Backend API"
		default:
			return "JavaScript/TypeScript Project"
		}
	case has("pyproject.toml") || has("setup.py"):
		if hasRoutes {
			return "Python Web API"
		}
		return "Python Package"
	case has("go.mod"):
		return "Go Application"
	default:
		return "Software Project"
	}
}

// entryPoints returns up to 10 entry-point files, skipping empty
// __init__.py files (spec.md §4.8).
func entryPoints(repo *types.Repository) []types.File {
	var out []types.File
	for _, f := range repo.Files {
		if !rank.IsEntryPoint(f.RelativePath) {
			continue
		}
		if strings.HasSuffix(f.RelativePath, "__init__.py") && f.TokenCounts.Claude < 50 {
			continue
		}
		out = append(out, f)
		if len(out) >= 10 {
			break
		}
	}
	return out
}

// entryType classifies a path→entry-type label for the XML overview's
// <entry type="..."> attribute, grounded on
// original_source/engine/src/output/xml.rs's get_entry_type.
func entryType(relativePath string) string {
	switch {
	case strings.Contains(relativePath, "main"):
		return "main"
	case strings.Contains(relativePath, "index"):
		return "index"
	case strings.Contains(relativePath, "app"):
		return "app"
	case strings.Contains(relativePath, "server"):
		return "server"
	case strings.Contains(relativePath, "lib"):
		return "library"
	case strings.Contains(relativePath, "mod.rs"):
		return "module"
	default:
		return "entry"
	}
}

func configFiles(repo *types.Repository) []types.File {
	var out []types.File
	for _, f := range repo.Files {
		if rank.IsConfigFile(f.RelativePath) {
			out = append(out, f)
		}
	}
	return out
}

func primaryLanguage(repo *types.Repository) string {
	best := ""
	max := -1
	for _, l := range repo.Metadata.Languages {
		if l.Files > max {
			max = l.Files
			best = l.Language
		}
	}
	return best
}

// withLineNumbers prefixes each line of content with a right-aligned
// 4-digit, 1-indexed line number and separator, per spec.md §4.8.
func withLineNumbers(content string) string {
	lines := strings.Split(content, "\n")
	var b strings.Builder
	for i, l := range lines {
		if i == len(lines)-1 && l == "" {
			break // trailing split artifact from a final newline
		}
		fmt.Fprintf(&b, "%4d %s\n", i+1, l)
	}
	return strings.TrimRight(b.String(), "\n")
}
