package planner

import (
	"math/rand"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

const libraryWeight = 1.0

// ActivityWeight exposes the computed shuffle weight of one activity for the
// debug endpoint. No mutation happens on this path.
type ActivityWeight struct {
	ID     string             `json:"id"`
	Kind   model.ActivityKind `json:"kind"`
	Weight float64            `json:"weight"`
}

// shuffleWeight biases discovered items by quality: a discovered activity with
// quality q gets weight 2q, so a high-quality find outranks curated entries
// and a zero-quality one is drawn only once nothing weighted remains.
func shuffleWeight(a model.Activity) float64 {
	if a.Kind == model.KindDiscovered {
		if a.QualityScore == nil {
			return 0
		}
		return 2 * *a.QualityScore
	}
	return libraryWeight
}

// ActivityWeights returns the per-item weight and kind tag for observability.
func ActivityWeights(activities []model.Activity) []ActivityWeight {
	out := make([]ActivityWeight, len(activities))
	for i, a := range activities {
		out[i] = ActivityWeight{ID: a.ID, Kind: a.Kind, Weight: shuffleWeight(a)}
	}
	return out
}

// WeightedShuffle produces a random permutation biased by per-item weight:
// items are picked without replacement with probability proportional to their
// remaining weight. When only zero-weight items remain they are drawn
// uniformly. The input slice is not modified.
func WeightedShuffle(activities []model.Activity, rng *rand.Rand) []model.Activity {
	remaining := make([]model.Activity, len(activities))
	copy(remaining, activities)
	weights := make([]float64, len(remaining))
	total := 0.0
	for i, a := range remaining {
		weights[i] = shuffleWeight(a)
		total += weights[i]
	}

	out := make([]model.Activity, 0, len(remaining))
	for len(remaining) > 0 {
		var idx int
		if total > 0 {
			target := rng.Float64() * total
			acc := 0.0
			idx = -1
			for i, w := range weights {
				acc += w
				if w > 0 && target < acc {
					idx = i
					break
				}
			}
			if idx < 0 {
				// Float rounding left target past the final bucket; take the
				// last positively weighted item.
				for i := len(weights) - 1; i >= 0; i-- {
					if weights[i] > 0 {
						idx = i
						break
					}
				}
			}
			if idx < 0 {
				// Subtraction residue kept total above zero with no positive
				// weights left.
				idx = rng.Intn(len(remaining))
			}
		} else {
			idx = rng.Intn(len(remaining))
		}

		out = append(out, remaining[idx])
		total -= weights[idx]
		if total < 0 {
			total = 0
		}
		last := len(remaining) - 1
		remaining[idx], weights[idx] = remaining[last], weights[last]
		remaining, weights = remaining[:last], weights[:last]
	}
	return out
}
