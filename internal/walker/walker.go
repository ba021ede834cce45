// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package walker traverses a repository tree, applying gitignore semantics,
// hidden-file exclusion, and size/binary gating, and classifies the
// surviving files by language. It is the sole sequential, I/O-bound stage of
// the pipeline (spec.md §4.1, §4.3 Phase A).
package walker

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/petar-djukic/repomapctx/internal/langmap"
)

// DefaultMaxFileSize is the default size gate (spec.md §4.1 rule 4).
const DefaultMaxFileSize = 50 * 1024 * 1024

// defaultIgnores are excluded whenever Config.UseDefaultIgnores and
// Config.RespectGitignore are both true, regardless of the repository's own
// .gitignore contents (they are checked by the same ignore matcher, which
// Walk consults only when RespectGitignore is set). Grounded on the
// teacher's internal/ast/scanner.go skipDirs set, generalized to glob form.
var defaultIgnores = []string{
	".git/", "node_modules/", "vendor/", "target/", "dist/", "build/",
	"__pycache__/", ".venv/", "venv/", ".idea/", ".vscode/", "*.pyc",
}

// Config controls traversal. IncludeHidden, RespectGitignore,
// UseDefaultIgnores, IncludePatterns and ExcludePatterns mirror the
// same-named configuration inputs; MaxFileSize is the size gate, with 0
// meaning DefaultMaxFileSize.
type Config struct {
	IncludeHidden     bool
	RespectGitignore  bool
	UseDefaultIgnores bool
	MaxFileSize       int64
	IncludePatterns   []string
	ExcludePatterns   []string
}

// applyDefaults fills zero-valued fields with their spec-mandated defaults.
func (c Config) applyDefaults() Config {
	if c.MaxFileSize == 0 {
		c.MaxFileSize = DefaultMaxFileSize
	}
	return c
}

// FileInfo is one surviving filesystem entry, ready for Phase B ingestion.
type FileInfo struct {
	Path         string
	RelativePath string
	SizeBytes    int64
	Language     *string
}

// Walk traverses root and returns every FileInfo that survives the rule
// pipeline in spec.md §4.1, sorted by RelativePath.
//
// Walk fails fast only when root itself is inaccessible; per-entry errors
// are logged at Warn and the entry is dropped.
func Walk(logger *slog.Logger, root string, cfg Config) ([]FileInfo, error) {
	cfg = cfg.applyDefaults()
	root = filepath.Clean(root)

	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	matcher, err := newIgnoreMatcher(logger, root, cfg)
	if err != nil {
		return nil, err
	}

	var results []FileInfo
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("walk entry error", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if !cfg.IncludeHidden && isHiddenEntry(d.Name()) {
				return filepath.SkipDir
			}
			if cfg.RespectGitignore && matcher.matchDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !cfg.IncludeHidden && isHiddenEntry(d.Name()) {
			return nil
		}
		if cfg.RespectGitignore && matcher.matchFile(rel) {
			return nil
		}
		if matchesAny(cfg.ExcludePatterns, rel) && !matchesAny(cfg.IncludePatterns, rel) {
			return nil
		}

		info, statErr := d.Info()
		if statErr != nil {
			logger.Warn("stat error", "path", path, "error", statErr)
			return nil
		}
		if info.Size() > cfg.MaxFileSize {
			return nil
		}

		ext := filepath.Ext(d.Name())
		if langmap.IsBinaryExtension(ext) {
			return nil
		}

		lang, ok := langmap.Classify(ext)
		var langTag *string
		if ok {
			langTag = &lang
		}

		results = append(results, FileInfo{
			Path:         path,
			RelativePath: rel,
			SizeBytes:    info.Size(),
			Language:     langTag,
		})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(results, func(i, j int) bool { return results[i].RelativePath < results[j].RelativePath })
	return results, nil
}

func isHiddenEntry(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(p, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}

// ignoreMatcher aggregates the global ignore list, every .gitignore found
// between root and each candidate path, and the VCS exclude file, per
// spec.md §4.1 rule 2.
type ignoreMatcher struct {
	root      string
	perDir    map[string]*ignore.GitIgnore // dir (relative to root, "" for root) -> compiled patterns
	hasDir    map[string]bool
}

func newIgnoreMatcher(logger *slog.Logger, root string, cfg Config) (*ignoreMatcher, error) {
	m := &ignoreMatcher{root: root, perDir: map[string]*ignore.GitIgnore{}, hasDir: map[string]bool{}}

	if cfg.UseDefaultIgnores {
		if gi, err := ignore.CompileIgnoreLines(defaultIgnores...); err == nil {
			m.perDir[""] = gi
		}
	}

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		rel, _ := filepath.Rel(root, path)
		if rel == "." {
			rel = ""
		}
		rel = filepath.ToSlash(rel)

		var lines []string
		for _, name := range []string{".gitignore", filepath.Join(".git", "info", "exclude")} {
			content, readErr := os.ReadFile(filepath.Join(path, name))
			if readErr != nil {
				continue
			}
			lines = append(lines, strings.Split(string(content), "\n")...)
		}
		if len(lines) > 0 {
			if rel == "" && cfg.UseDefaultIgnores {
				// keep the defaults in the root matcher; listed last so they win
				lines = append(lines, defaultIgnores...)
			}
			gi, compileErr := ignore.CompileIgnoreLines(lines...)
			if compileErr != nil {
				logger.Warn("gitignore compile error", "dir", path, "error", compileErr)
				return nil
			}
			m.perDir[rel] = gi
			m.hasDir[rel] = true
		}
		return nil
	})

	return m, nil
}

// matchFile reports whether rel (root-relative, forward-slash) is ignored by
// any applicable .gitignore between root and the file's containing
// directory.
func (m *ignoreMatcher) matchFile(rel string) bool {
	return m.matches(rel)
}

func (m *ignoreMatcher) matchDir(rel string) bool {
	return m.matches(rel)
}

func (m *ignoreMatcher) matches(rel string) bool {
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." {
		dir = ""
	}
	for {
		if gi, ok := m.perDir[dir]; ok {
			sub, _ := filepath.Rel(dir, rel)
			if dir == "" {
				sub = rel
			}
			if gi.MatchesPath(filepath.ToSlash(sub)) {
				return true
			}
		}
		if dir == "" {
			break
		}
		dir = filepath.ToSlash(filepath.Dir(dir))
		if dir == "." {
			dir = ""
		}
	}
	if gi, ok := m.perDir[""]; ok {
		if gi.MatchesPath(rel) {
			return true
		}
	}
	return false
}
