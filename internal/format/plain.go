// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

// PlainFormatter renders the minimal banner/separator/per-file shape
// (spec.md §4.8), the Llama-oriented default: no markup at all.
type PlainFormatter struct{ Options Options }

func (f PlainFormatter) Name() string { return "plain" }

const plainSeparator = "----------------------------------------"

func (f PlainFormatter) Format(repo *types.Repository, rm *types.RepoMap, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Repository: %s\n", repo.Name)
	b.WriteString(plainSeparator + "\n")
	model := opts.Model
	if model == "" {
		model = types.ModelClaude
	}
	fmt.Fprintf(&b, "%d files, %d lines, %d tokens (%s estimate)\n", repo.Metadata.TotalFiles, repo.Metadata.TotalLines, tokensFor(repo.Metadata.TotalTokens, opts.Model), model)
	b.WriteString(plainSeparator + "\n\n")

	b.WriteString(rm.Summary + "\n")
	b.WriteString(plainSeparator + "\n\n")

	if opts.ShowDirectoryStructure && repo.Metadata.DirectoryStructure != nil {
		b.WriteString(*repo.Metadata.DirectoryStructure + "\n")
		b.WriteString(plainSeparator + "\n\n")
	}

	for _, file := range repo.Files {
		fmt.Fprintf(&b, "=== %s ===\n", file.RelativePath)
		if file.Content != nil {
			content := *file.Content
			if opts.ShowLineNumbers {
				content = withLineNumbers(content)
			}
			b.WriteString(content + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
