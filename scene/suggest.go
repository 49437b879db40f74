// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// suggestThreshold is the minimum similarity for a suggestion.
const suggestThreshold = 0.5

// Suggest returns the candidate most similar to name by Levenshtein
// similarity, or "" if none is similar enough.
func Suggest(name string, candidates []string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", suggestThreshold
	for _, c := range candidates {
		sim := strutil.Similarity(name, c, lev)
		if sim >= bestSim && (best == "" || sim > bestSim) {
			best, bestSim = c, sim
		}
	}
	return best
}

func prototypeNames(protos map[string]Entity) []string {
	names := make([]string, 0, len(protos))
	for nm := range protos {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}
