// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

// YAMLFormatter renders the Gemini-oriented YAML shape (spec.md §4.8):
// top-level metadata/languages/repository_map/files mappings plus a
// trailing `query: |` placeholder, since the Gemini convention places the
// user query after the context block.
type YAMLFormatter struct{ Options Options }

func (f YAMLFormatter) Name() string { return "yaml" }

type yamlFileEntry struct {
	Path     string `yaml:"path"`
	Language string `yaml:"language,omitempty"`
	Tokens   uint32 `yaml:"tokens"`
	Content  string `yaml:"content,omitempty"`
}

type yamlDoc struct {
	Metadata      *types.Metadata       `yaml:"metadata"`
	Languages     []types.LanguageStats `yaml:"languages"`
	RepositoryMap *types.RepoMap        `yaml:"repository_map"`
	Files         []yamlFileEntry       `yaml:"files"`
}

func (f YAMLFormatter) Format(repo *types.Repository, rm *types.RepoMap, opts Options) string {
	files := make([]yamlFileEntry, 0, len(repo.Files))
	for _, file := range repo.Files {
		lang := ""
		if file.Language != nil {
			lang = *file.Language
		}
		content := ""
		if file.Content != nil {
			content = *file.Content
			if opts.ShowLineNumbers {
				content = withLineNumbers(content)
			}
		}
		files = append(files, yamlFileEntry{Path: file.RelativePath, Language: lang, Tokens: tokensFor(file.TokenCounts, opts.Model), Content: content})
	}

	doc := yamlDoc{
		Metadata:      &repo.Metadata,
		Languages:     repo.Metadata.Languages,
		RepositoryMap: rm,
		Files:         files,
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.Write(out)
	fmt.Fprintf(&b, "query: |\n")
	return b.String()
}
