package planner

import (
	"math/rand"
	"testing"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

func qualityActivity(id string, quality float64) model.Activity {
	q := quality
	return model.Activity{ID: id, Kind: model.KindDiscovered, QualityScore: &q}
}

func TestWeightedShufflePreservesMembers(t *testing.T) {
	in := []model.Activity{
		{ID: "lib-1", Kind: model.KindLibrary},
		{ID: "lib-2", Kind: model.KindLibrary},
		qualityActivity("disc-1", 0.9),
		qualityActivity("disc-2", 0.1),
	}
	rng := rand.New(rand.NewSource(1))
	out := WeightedShuffle(in, rng)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	seen := map[string]int{}
	for _, a := range out {
		seen[a.ID]++
	}
	for _, a := range in {
		if seen[a.ID] != 1 {
			t.Fatalf("item %s appeared %d times", a.ID, seen[a.ID])
		}
	}
	// Input order untouched.
	if in[0].ID != "lib-1" || in[3].ID != "disc-2" {
		t.Fatal("input slice was mutated")
	}
}

func TestWeightedShuffleZeroWeightNeverFirst(t *testing.T) {
	in := []model.Activity{
		{ID: "lib-1", Kind: model.KindLibrary},
		{ID: "lib-2", Kind: model.KindLibrary},
		qualityActivity("zero", 0),
	}
	rng := rand.New(rand.NewSource(42))
	const runs = 10000
	lastCount := 0
	for i := 0; i < runs; i++ {
		out := WeightedShuffle(in, rng)
		if out[0].ID == "zero" {
			t.Fatalf("zero-weight item drawn first on run %d", i)
		}
		if out[len(out)-1].ID == "zero" {
			lastCount++
		}
	}
	if lastCount != runs {
		t.Fatalf("zero-weight item last in %d/%d runs, want all", lastCount, runs)
	}
}

func TestWeightedShuffleBiasTowardHighQuality(t *testing.T) {
	// A 0.9-quality discovered item (weight 1.8) vs a library item (weight
	// 1.0): the discovered item should lead ~64% of the time. Allow a wide
	// band; this is a distribution-shape assertion, not an exact one.
	in := []model.Activity{
		{ID: "lib", Kind: model.KindLibrary},
		qualityActivity("disc", 0.9),
	}
	rng := rand.New(rand.NewSource(7))
	const runs = 10000
	discFirst := 0
	for i := 0; i < runs; i++ {
		if WeightedShuffle(in, rng)[0].ID == "disc" {
			discFirst++
		}
	}
	ratio := float64(discFirst) / runs
	if ratio < 0.58 || ratio > 0.70 {
		t.Fatalf("disc-first ratio = %.3f, want around 0.643", ratio)
	}
}

func TestWeightedShuffleAllZeroWeights(t *testing.T) {
	in := []model.Activity{
		qualityActivity("z1", 0),
		qualityActivity("z2", 0),
		qualityActivity("z3", 0),
	}
	rng := rand.New(rand.NewSource(3))
	out := WeightedShuffle(in, rng)
	if len(out) != 3 {
		t.Fatalf("len = %d", len(out))
	}
}

func TestActivityWeights(t *testing.T) {
	in := []model.Activity{
		{ID: "lib", Kind: model.KindLibrary},
		qualityActivity("disc", 0.5),
		{ID: "disc-noscore", Kind: model.KindDiscovered},
	}
	ws := ActivityWeights(in)
	if ws[0].Weight != 1.0 || ws[0].Kind != model.KindLibrary {
		t.Fatalf("library weight = %+v", ws[0])
	}
	if ws[1].Weight != 1.0 {
		t.Fatalf("0.5-quality discovered weight = %v, want 1.0", ws[1].Weight)
	}
	if ws[2].Weight != 0 {
		t.Fatalf("scoreless discovered weight = %v, want 0", ws[2].Weight)
	}
}
