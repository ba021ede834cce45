// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package treeview renders a flat list of repo-relative file paths as an
// indented directory tree, used by Ingestor Phase C to populate
// Metadata.DirectoryStructure (spec.md §4.3 Phase C) and by the XML/Markdown
// formatters' directory-structure sections.
package treeview

import (
	"sort"
	"strings"
)

type node struct {
	name     string
	isDir    bool
	children map[string]*node
	order    []string
}

func newNode(name string, isDir bool) *node {
	return &node{name: name, isDir: isDir, children: map[string]*node{}}
}

func (n *node) child(name string, isDir bool) *node {
	if c, ok := n.children[name]; ok {
		return c
	}
	c := newNode(name, isDir)
	n.children[name] = c
	n.order = append(n.order, name)
	return c
}

// Build renders relativePaths (forward-slash, repo-root-relative) as an
// indented tree, directories before files within each level,
// alphabetically ordered.
func Build(relativePaths []string) string {
	root := newNode("", true)
	for _, p := range relativePaths {
		parts := strings.Split(p, "/")
		cur := root
		for i, part := range parts {
			isDir := i < len(parts)-1
			cur = cur.child(part, isDir)
		}
	}
	var b strings.Builder
	renderChildren(&b, root, 0)
	return strings.TrimRight(b.String(), "\n")
}

func renderChildren(b *strings.Builder, n *node, depth int) {
	names := append([]string(nil), n.order...)
	sort.Slice(names, func(i, j int) bool {
		ci, cj := n.children[names[i]], n.children[names[j]]
		if ci.isDir != cj.isDir {
			return ci.isDir // directories first
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		child := n.children[name]
		b.WriteString(strings.Repeat("  ", depth))
		if child.isDir {
			b.WriteString(name + "/\n")
			renderChildren(b, child, depth+1)
		} else {
			b.WriteString(name + "\n")
		}
	}
}
