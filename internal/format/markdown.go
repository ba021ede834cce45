// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

// MarkdownFormatter renders the GPT-oriented Markdown shape, grounded on
// original_source/engine/src/output/markdown.rs.
type MarkdownFormatter struct{ Options Options }

func (f MarkdownFormatter) Name() string { return "markdown" }

func (f MarkdownFormatter) Format(repo *types.Repository, rm *types.RepoMap, opts Options) string {
	var b strings.Builder
	model := opts.Model
	if model == "" {
		model = types.ModelClaude
	}
	fmt.Fprintf(&b, "# %s\n\n", repo.Name)
	fmt.Fprintf(&b, "> %d files · %d lines · %d tokens (%s estimate)\n\n",
		repo.Metadata.TotalFiles, repo.Metadata.TotalLines, tokensFor(repo.Metadata.TotalTokens, opts.Model), model)

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "| Project type | %s |\n", detectProjectType(repo))
	fmt.Fprintf(&b, "|---|---|\n")
	if lang := primaryLanguage(repo); lang != "" {
		fmt.Fprintf(&b, "| Primary language | %s |\n", lang)
	}
	b.WriteString("\n")

	if len(repo.Metadata.Languages) > 0 {
		b.WriteString("| Language | Files | % |\n|---|---|---|\n")
		for _, l := range repo.Metadata.Languages {
			fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", l.Language, l.Files, l.Percentage)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Repository Map\n\n")
	b.WriteString(rm.Summary + "\n\n")
	if len(rm.ModuleGraph.Nodes) > 0 {
		b.WriteString("```mermaid\ngraph TD\n")
		for _, n := range rm.ModuleGraph.Nodes {
			fmt.Fprintf(&b, "  %s[%s]\n", sanitizeMermaidID(n.Name), n.Name)
		}
		for _, e := range rm.ModuleGraph.Edges {
			fmt.Fprintf(&b, "  %s --> %s\n", sanitizeMermaidID(e.From), sanitizeMermaidID(e.To))
		}
		b.WriteString("```\n\n")
	}

	if len(rm.KeySymbols) > 0 {
		b.WriteString("### Key symbols\n\n")
		b.WriteString("| Rank | Symbol | Kind | File | References |\n|---|---|---|---|---|\n")
		for _, s := range rm.KeySymbols {
			fmt.Fprintf(&b, "| %d | %s | %s | %s:%d | %d |\n", s.Rank, s.Name, s.Kind, s.File, s.Line, s.References)
		}
		b.WriteString("\n")
	}

	if opts.ShowDirectoryStructure && repo.Metadata.DirectoryStructure != nil {
		b.WriteString("## Project tree\n\n```\n")
		b.WriteString(treeWithEmoji(*repo.Metadata.DirectoryStructure))
		b.WriteString("```\n\n")
	}

	b.WriteString("## Files\n\n")
	for _, file := range repo.Files {
		writeFileMarkdown(&b, file, opts)
	}
	return b.String()
}

func sanitizeMermaidID(name string) string {
	r := strings.NewReplacer("-", "_", ".", "_", "/", "_")
	return r.Replace(name)
}

func treeWithEmoji(tree string) string {
	lines := strings.Split(tree, "\n")
	var b strings.Builder
	for _, l := range lines {
		trimmed := strings.TrimLeft(l, " ")
		indent := l[:len(l)-len(trimmed)]
		if strings.HasSuffix(trimmed, "/") {
			fmt.Fprintf(&b, "%s\U0001F4C1 %s\n", indent, trimmed)
		} else if trimmed != "" {
			fmt.Fprintf(&b, "%s\U0001F4C4 %s\n", indent, trimmed)
		}
	}
	return b.String()
}

func writeFileMarkdown(b *strings.Builder, file types.File, opts Options) {
	fmt.Fprintf(b, "### %s\n\n", file.RelativePath)
	if file.Content == nil {
		return
	}
	lang := ""
	if file.Language != nil {
		lang = *file.Language
	}
	content := *file.Content
	if opts.ShowLineNumbers {
		content = withLineNumbers(content)
	}
	fmt.Fprintf(b, "```%s\n%s\n```\n\n", lang, content)
}
