package candidates

import (
	"math"
	"sort"
)

// binKey identifies a cluster_grid_m bin.
type binKey struct {
	bx, by int
}

func (k binKey) less(o binKey) bool {
	if k.bx != o.bx {
		return k.bx < o.bx
	}
	return k.by < o.by
}

// cluster bins candidates by floor(x/gridM), floor(y/gridM) and keeps, per
// bin, the candidate with the highest raw elevation. Iteration is
// deterministic: row-major traversal of the input (already guaranteed by
// Extract) followed by a lexicographic pass over bin keys, per spec.md
// §4.2 step 6.
func cluster(candidatesIn []Candidate, gridM float64) []Candidate {
	if len(candidatesIn) == 0 {
		return nil
	}
	assertPositive(gridM)

	best := make(map[binKey]Candidate)
	order := make([]binKey, 0)
	seen := make(map[binKey]bool)

	for _, c := range candidatesIn {
		k := binKey{
			bx: int(math.Floor(c.X / gridM)),
			by: int(math.Floor(c.Y / gridM)),
		}
		if cur, ok := best[k]; !ok || c.Elevation > cur.Elevation {
			best[k] = c
		}
		if !seen[k] {
			seen[k] = true
			order = append(order, k)
		}
	}

	// deterministic lexicographic ordering on bin keys
	sort.Slice(order, func(i, j int) bool { return order[i].less(order[j]) })

	out := make([]Candidate, 0, len(order))
	for _, k := range order {
		out = append(out, best[k])
	}
	return out
}

func assertPositive(v float64) {
	if v <= 0 {
		panic("candidates.cluster: gridM must be positive")
	}
}
