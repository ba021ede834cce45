// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package format

import (
	"encoding/json"

	"github.com/petar-djukic/repomapctx/pkg/types"
)

// JSONFormatter renders the canonical {repository, map} serialization
// (spec.md §4.8).
type JSONFormatter struct{ Options Options }

func (f JSONFormatter) Name() string { return "json" }

type jsonDoc struct {
	Repository *types.Repository `json:"repository"`
	Map        *types.RepoMap    `json:"map"`
}

func (f JSONFormatter) Format(repo *types.Repository, rm *types.RepoMap, opts Options) string {
	doc := jsonDoc{Repository: repo, Map: rm}
	out, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(out)
}
