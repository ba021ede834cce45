// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package format

import (
	"strings"
	"testing"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

func testRepoAndMap() (*types.Repository, *types.RepoMap) {
	lang := "go"
	content := "package main\n\nfunc main() {}\n"
	tree := "main.go\n"
	repo := &types.Repository{
		Name: "tinyrepo",
		Files: []types.File{
			{RelativePath: "main.go", Language: &lang, Content: &content, TokenCounts: types.TokenCounts{Claude: 12}},
		},
		Metadata: types.Metadata{
			TotalFiles:         1,
			TotalLines:         3,
			TotalTokens:        types.TokenCounts{Claude: 12},
			Languages:          []types.LanguageStats{{Language: "go", Files: 1, Percentage: 100}},
			DirectoryStructure: &tree,
		},
	}
	rm := &types.RepoMap{
		Summary: "tinyrepo is a small Go program.\nPrimary language: go.\nTop modules: .",
		KeySymbols: []types.RankedSymbol{
			{Name: "main", Kind: types.KindFunction, File: "main.go", Line: 3, Rank: 1, References: 0, Importance: 0.9},
		},
		ModuleGraph: types.ModuleGraph{Nodes: []types.ModuleNode{{Name: ".", Files: 1, Tokens: 12}}},
		FileIndex:   []types.FileIndexEntry{{Path: "main.go", Tokens: 12, Importance: 0.9, Band: types.BandCritical}},
	}
	return repo, rm
}

func TestAllFormattersProduceNonemptyOutput(t *testing.T) {
	repo, rm := testRepoAndMap()
	for _, kind := range []Kind{KindXML, KindMarkdown, KindJSON, KindYAML, KindTOON, KindPlain} {
		out := ByKind(kind).Format(repo, rm, Options{ShowFileSummary: true, ShowDirectoryStructure: true})
		if strings.TrimSpace(out) == "" {
			t.Fatalf("%s formatter produced empty output", kind)
		}
		if !strings.Contains(out, "main.go") {
			t.Fatalf("%s formatter did not include the file path, got:\n%s", kind, out)
		}
	}
}

func TestXMLEscapesAttributeValues(t *testing.T) {
	repo, rm := testRepoAndMap()
	repo.Name = `A & B "quoted"`
	out := XMLFormatter{}.Format(repo, rm, Options{})
	if strings.Contains(out, `A & B "quoted"`) {
		t.Fatal("expected repo name to be escaped")
	}
	if !strings.Contains(out, "&amp;") {
		t.Fatal("expected ampersand escaped")
	}
}

func TestLineNumbersPrefixEachLine(t *testing.T) {
	repo, rm := testRepoAndMap()
	out := PlainFormatter{}.Format(repo, rm, Options{ShowLineNumbers: true})
	if !strings.Contains(out, "   1 package main") {
		t.Fatalf("expected line-numbered first line, got:\n%s", out)
	}
	if !strings.Contains(out, "   3 func main() {}") {
		t.Fatalf("expected line-numbered third line, got:\n%s", out)
	}
}

func TestXMLEntryPointsCarryTypeAttribute(t *testing.T) {
	repo, rm := testRepoAndMap()
	out := XMLFormatter{}.Format(repo, rm, Options{})
	if !strings.Contains(out, `<entry path="main.go" type="main"`) {
		t.Fatalf("expected a main.go entry with type=\"main\", got:\n%s", out)
	}
}

func TestEntryTypeClassification(t *testing.T) {
	cases := map[string]string{
		"src/main.rs":      "main",
		"src/index.ts":     "index",
		"app/app.py":       "app",
		"cmd/server.go":    "server",
		"pkg/lib/lib.go":   "library",
		"internal/mod.rs":  "module",
		"internal/util.go": "entry",
	}
	for path, want := range cases {
		if got := entryType(path); got != want {
			t.Fatalf("entryType(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestTOONQuotesAmbiguousValues(t *testing.T) {
	if q := toonQuote("true"); q != `"true"` {
		t.Fatalf("expected reserved literal to be quoted, got %q", q)
	}
	if q := toonQuote("plain"); q != "plain" {
		t.Fatalf("expected plain value unquoted, got %q", q)
	}
	if q := toonQuote("a,b"); q != `"a,b"` {
		t.Fatalf("expected comma value quoted, got %q", q)
	}
	if q := toonQuote("+1.5"); q != `"+1.5"` {
		t.Fatalf("expected leading-+ float quoted, got %q", q)
	}
}
