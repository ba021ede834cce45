// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package treeview

import "testing"

func TestBuildOrdersDirsBeforeFiles(t *testing.T) {
	out := Build([]string{"src/main.rs", "Cargo.toml", "src/util.rs"})
	want := "src/\n  main.rs\n  util.rs\nCargo.toml\n"
	if out+"\n" != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}
