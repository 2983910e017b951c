package roads

import (
	"math"
	"math/rand"
)

// AugmentLoops adds redundancy edges on top of the spanning structure so
// the network offers alternate routes. The target size is
// round(len(mst) * density); non-MST candidates are shuffled with the
// pipeline's seeded rng and appended until the target or the candidate
// pool is exhausted.
//
// The returned slice starts with the MST edges, so the spanning
// structure is always a subset of the final edge set. Reproducibility
// depends on this being the only consumer of the rng at its point in
// the stage order.
func AugmentLoops(mst []Edge, candidates CandidateSet, density float64, rng *rand.Rand) []Edge {
	final := make([]Edge, len(mst))
	copy(final, mst)

	if density <= 0 || len(candidates) == 0 {
		return final
	}

	inMST := make(map[EdgeKey]struct{}, len(mst))
	for _, e := range mst {
		inMST[e.Key] = struct{}{}
	}

	// Canonical order first, then shuffle: the rng stream alone decides
	// the result regardless of map iteration order.
	remaining := make([]Edge, 0, len(candidates)-len(mst))
	for _, e := range candidates.sortedEdges() {
		if _, ok := inMST[e.Key]; ok {
			continue
		}
		remaining = append(remaining, e)
	}

	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	target := int(math.Round(float64(len(mst)) * density))
	for _, e := range remaining {
		if len(final) >= target {
			break
		}
		final = append(final, e)
	}

	return final
}
