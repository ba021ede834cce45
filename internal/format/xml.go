// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

// XMLFormatter renders the Claude-oriented XML shape, grounded on
// original_source/engine/src/output/xml.rs.
type XMLFormatter struct{ Options Options }

func (f XMLFormatter) Name() string { return "xml" }

func (f XMLFormatter) Format(repo *types.Repository, rm *types.RepoMap, opts Options) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<!-- cacheable-prefix:start -->\n")
	b.WriteString("<repository>\n")
	b.WriteString(fmt.Sprintf("  <name>%s</name>\n", escapeXML(repo.Name)))

	writeLLMGuide(&b, repo)
	writeOverview(&b, repo, opts.Model)
	writeMetadata(&b, repo, opts.Model)
	if repo.Metadata.GitHistory != nil {
		writeGitHistory(&b, repo.Metadata.GitHistory)
	}
	writeRepositoryMap(&b, rm)
	if opts.ShowFileSummary {
		writeFileIndex(&b, rm)
	}
	b.WriteString("<!-- cacheable-prefix:end -->\n")

	b.WriteString("  <files>\n")
	for _, file := range repo.Files {
		writeFileXML(&b, file, opts)
	}
	b.WriteString("  </files>\n")
	b.WriteString("</repository>\n")
	return b.String()
}

func writeLLMGuide(b *strings.Builder, repo *types.Repository) {
	b.WriteString("  <llm_context_guide>\n")
	fmt.Fprintf(b, "    <purpose>Comprehensive code context for the %s repository, optimized for AI-assisted code understanding.</purpose>\n", escapeXML(repo.Name))
	b.WriteString("    <how_to_use>\n")
	b.WriteString("      <tip>Start with &lt;overview&gt; to understand the project's purpose and structure</tip>\n")
	b.WriteString("      <tip>Check &lt;entry_points&gt; to find main application files</tip>\n")
	b.WriteString("      <tip>Use &lt;repository_map&gt; to understand relationships between modules</tip>\n")
	b.WriteString("      <tip>Files are ordered by importance; most critical files come first</tip>\n")
	b.WriteString("    </how_to_use>\n")
	b.WriteString("  </llm_context_guide>\n")
}

func writeOverview(b *strings.Builder, repo *types.Repository, model types.Model) {
	b.WriteString("  <overview>\n")
	fmt.Fprintf(b, "    <project_type>%s</project_type>\n", escapeXML(detectProjectType(repo)))
	if lang := primaryLanguage(repo); lang != "" {
		fmt.Fprintf(b, "    <primary_language>%s</primary_language>\n", escapeXML(lang))
	}

	b.WriteString("    <entry_points>\n")
	for _, ep := range entryPoints(repo) {
		fmt.Fprintf(b, "      <entry path=\"%s\" type=\"%s\" tokens=\"%d\"/>\n", escapeXML(ep.RelativePath), entryType(ep.RelativePath), tokensFor(ep.TokenCounts, model))
	}
	b.WriteString("    </entry_points>\n")

	b.WriteString("    <config_files>\n")
	for _, cf := range configFiles(repo) {
		fmt.Fprintf(b, "      <config path=\"%s\" tokens=\"%d\"/>\n", escapeXML(cf.RelativePath), tokensFor(cf.TokenCounts, model))
	}
	b.WriteString("    </config_files>\n")
	b.WriteString("  </overview>\n")
}

func writeMetadata(b *strings.Builder, repo *types.Repository, model types.Model) {
	m := repo.Metadata
	b.WriteString("  <metadata>\n")
	fmt.Fprintf(b, "    <total_files>%d</total_files>\n", m.TotalFiles)
	fmt.Fprintf(b, "    <total_lines>%d</total_lines>\n", m.TotalLines)
	fmt.Fprintf(b, "    <total_tokens>%d</total_tokens>\n", tokensFor(m.TotalTokens, model))
	if m.Branch != nil {
		fmt.Fprintf(b, "    <branch>%s</branch>\n", escapeXML(*m.Branch))
	}
	if m.Commit != nil {
		fmt.Fprintf(b, "    <commit>%s</commit>\n", escapeXML(*m.Commit))
	}
	if m.DirectoryStructure != nil {
		b.WriteString("    <directory_structure><![CDATA[\n")
		b.WriteString(*m.DirectoryStructure)
		b.WriteString("\n]]></directory_structure>\n")
	}
	b.WriteString("    <external_dependencies>\n")
	for _, d := range m.ExternalDependencies {
		fmt.Fprintf(b, "      <dependency>%s</dependency>\n", escapeXML(d))
	}
	b.WriteString("    </external_dependencies>\n")
	b.WriteString("  </metadata>\n")
}

func writeGitHistory(b *strings.Builder, h *types.GitHistory) {
	b.WriteString("  <git_history>\n")
	for _, c := range h.Commits {
		fmt.Fprintf(b, "    <commit hash=\"%s\" author=\"%s\" date=\"%s\">%s</commit>\n",
			escapeXML(c.ShortHash), escapeXML(c.Author), escapeXML(c.Date), escapeXML(c.Message))
	}
	for _, c := range h.ChangedFiles {
		fmt.Fprintf(b, "    <changed path=\"%s\" status=\"%s\"/>\n", escapeXML(c.Path), escapeXML(c.Status))
	}
	b.WriteString("  </git_history>\n")
}

func writeRepositoryMap(b *strings.Builder, rm *types.RepoMap) {
	b.WriteString("  <repository_map>\n")
	fmt.Fprintf(b, "    <summary>%s</summary>\n", escapeXML(rm.Summary))
	b.WriteString("    <key_symbols>\n")
	for _, s := range rm.KeySymbols {
		fmt.Fprintf(b, "      <symbol rank=\"%d\" name=\"%s\" kind=\"%s\" file=\"%s\" line=\"%d\" references=\"%d\"/>\n",
			s.Rank, escapeXML(s.Name), s.Kind, escapeXML(s.File), s.Line, s.References)
	}
	b.WriteString("    </key_symbols>\n")
	b.WriteString("    <modules>\n")
	for _, m := range rm.ModuleGraph.Nodes {
		fmt.Fprintf(b, "      <module name=\"%s\" files=\"%d\" tokens=\"%d\"/>\n", escapeXML(m.Name), m.Files, m.Tokens)
	}
	b.WriteString("    </modules>\n")
	b.WriteString("  </repository_map>\n")
}

func writeFileIndex(b *strings.Builder, rm *types.RepoMap) {
	b.WriteString("  <file_index>\n")
	for _, e := range rm.FileIndex {
		fmt.Fprintf(b, "    <file path=\"%s\" tokens=\"%d\" band=\"%s\"/>\n", escapeXML(e.Path), e.Tokens, e.Band)
	}
	b.WriteString("  </file_index>\n")
}

func writeFileXML(b *strings.Builder, file types.File, opts Options) {
	lang := ""
	if file.Language != nil {
		lang = *file.Language
	}
	fmt.Fprintf(b, "    <file path=\"%s\" language=\"%s\" tokens=\"%d\">\n", escapeXML(file.RelativePath), escapeXML(lang), tokensFor(file.TokenCounts, opts.Model))
	if file.Content != nil {
		content := *file.Content
		if opts.ShowLineNumbers {
			content = withLineNumbers(content)
		}
		b.WriteString("      <content><![CDATA[\n")
		b.WriteString(content)
		b.WriteString("\n]]></content>\n")
	}
	b.WriteString("    </file>\n")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string { return xmlEscaper.Replace(s) }
