package roads

import "sort"

// unionFind is an index-arena disjoint set with path compression and
// union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// find returns the set root of i, compressing the path as it walks.
func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}
	return i
}

// union merges the sets of a and b, reporting whether they were distinct.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}

// connected reports whether two waypoints share a set.
func (uf *unionFind) connected(a, b int) bool {
	return uf.find(a) == uf.find(b)
}

// BuildMST extracts a minimum-weight spanning structure from the
// candidate set using Kruskal's algorithm. Edges are taken in ascending
// weight order with canonical-pair tie-breaking, so the result is
// deterministic for a given input.
//
// A disconnected candidate graph is not an error: the result is then a
// spanning forest with fewer than n-1 edges and downstream stages simply
// produce fewer roads.
func BuildMST(candidates CandidateSet, n int) []Edge {
	if n < 2 || len(candidates) == 0 {
		return nil
	}

	edges := candidates.sortedEdges()
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	uf := newUnionFind(n)
	mst := make([]Edge, 0, n-1)

	for _, e := range edges {
		if !uf.union(e.Key.A, e.Key.B) {
			continue
		}
		mst = append(mst, e)
		if len(mst) == n-1 {
			break
		}
	}

	return mst
}
