// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

// TOONFormatter renders spec.md §4.8's custom token-oriented line format:
// tabular blocks for regular records, literal blocks for free text, and
// per-field quoting only where ambiguity would otherwise arise. Grounded on
// original_source/engine/src/output/toon.rs.
type TOONFormatter struct{ Options Options }

func (f TOONFormatter) Name() string { return "toon" }

func (f TOONFormatter) Format(repo *types.Repository, rm *types.RepoMap, opts Options) string {
	var b strings.Builder

	b.WriteString("metadata:\n")
	fmt.Fprintf(&b, "  name: %s\n", toonQuote(repo.Name))
	fmt.Fprintf(&b, "  total_files: %d\n", repo.Metadata.TotalFiles)
	fmt.Fprintf(&b, "  total_lines: %d\n", repo.Metadata.TotalLines)
	fmt.Fprintf(&b, "  total_tokens: %d\n", tokensFor(repo.Metadata.TotalTokens, opts.Model))

	if len(repo.Metadata.Languages) > 0 {
		fmt.Fprintf(&b, "languages[%d]{language,files,percentage}:\n", len(repo.Metadata.Languages))
		for _, l := range repo.Metadata.Languages {
			fmt.Fprintf(&b, "  %s,%d,%.1f\n", toonQuote(l.Language), l.Files, l.Percentage)
		}
	}

	if repo.Metadata.DirectoryStructure != nil {
		b.WriteString("directory_structure: |\n")
		for _, line := range strings.Split(*repo.Metadata.DirectoryStructure, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	if len(repo.Metadata.ExternalDependencies) > 0 {
		fmt.Fprintf(&b, "dependencies[%d]:\n", len(repo.Metadata.ExternalDependencies))
		for _, d := range repo.Metadata.ExternalDependencies {
			fmt.Fprintf(&b, "  - %s\n", toonQuote(d))
		}
	}

	b.WriteString("repository_map:\n")
	fmt.Fprintf(&b, "  symbols[%d]{rank,name,kind,file,line,references,importance}:\n", len(rm.KeySymbols))
	for _, s := range rm.KeySymbols {
		fmt.Fprintf(&b, "    %d,%s,%s,%s,%d,%d,%.3f\n", s.Rank, toonQuote(s.Name), s.Kind, toonQuote(s.File), s.Line, s.References, s.Importance)
	}
	fmt.Fprintf(&b, "  modules[%d]{name,files,tokens}:\n", len(rm.ModuleGraph.Nodes))
	for _, m := range rm.ModuleGraph.Nodes {
		fmt.Fprintf(&b, "    %s,%d,%d\n", toonQuote(m.Name), m.Files, m.Tokens)
	}

	fmt.Fprintf(&b, "file_index[%d]{path,tokens,band}:\n", len(rm.FileIndex))
	for _, e := range rm.FileIndex {
		fmt.Fprintf(&b, "  %s,%d,%s\n", toonQuote(e.Path), e.Tokens, e.Band)
	}

	for _, file := range repo.Files {
		writeFileTOON(&b, file, opts)
	}

	return b.String()
}

func writeFileTOON(b *strings.Builder, file types.File, opts Options) {
	lang := ""
	if file.Language != nil {
		lang = *file.Language
	}
	fmt.Fprintf(b, "- %s|%s|%d:\n", toonQuote(file.RelativePath), toonQuote(lang), tokensFor(file.TokenCounts, opts.Model))
	if file.Content == nil {
		return
	}
	lines := strings.Split(*file.Content, "\n")
	for i, line := range lines {
		if opts.ShowLineNumbers {
			fmt.Fprintf(b, "  %d:%s\n", i+1, line)
		} else {
			fmt.Fprintf(b, "  %s\n", line)
		}
	}
}

var toonReservedLiteral = regexp.MustCompile(`^(true|false|null|[+-]?[0-9]+(\.[0-9]+)?)$`)
var toonControlChars = regexp.MustCompile(`[\x00-\x1f]`)

// toonQuote applies spec.md §4.8's TOON quoting rule: values containing
// comma, pipe, control characters, or matching true/false/null/a number
// literal are quoted and backslash-escaped.
func toonQuote(s string) string {
	needsQuote := strings.ContainsAny(s, ",|") || toonControlChars.MatchString(s) || toonReservedLiteral.MatchString(s)
	if !needsQuote {
		return s
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
	return `"` + escaped + `"`
}
