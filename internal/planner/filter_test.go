package planner

import (
	"testing"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

func filterFixtures() []model.Activity {
	return []model.Activity{
		{ID: "a1", Kind: model.KindLibrary, Title: "Snuffle Mat Foraging", Pillar: model.PillarInstinctual, Difficulty: model.DifficultyEasy},
		{ID: "a2", Kind: model.KindLibrary, Title: "Puzzle Feeder Challenge", Pillar: model.PillarMental, Difficulty: model.DifficultyMedium},
		{ID: "a3", Kind: model.KindDiscovered, Title: "Backyard Agility Course", Pillar: model.PillarPhysical, Difficulty: model.DifficultyHard},
		{ID: "a4", Kind: model.KindLibrary, Title: "Trick Chain", Pillar: model.PillarMental, Difficulty: model.DifficultyMedium},
	}
}

func ids(as []model.Activity) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterByPillar(t *testing.T) {
	got := FilterActivities(filterFixtures(), Filters{Pillar: "mental"})
	if !equalIDs(ids(got), []string{"a2", "a4"}) {
		t.Fatalf("got %v", ids(got))
	}
	for _, a := range got {
		if a.Pillar != model.PillarMental {
			t.Fatalf("non-mental item leaked: %s", a.ID)
		}
	}
}

func TestFilterAllIsNoop(t *testing.T) {
	got := FilterActivities(filterFixtures(), Filters{Pillar: "all", Difficulty: "all"})
	if !equalIDs(ids(got), []string{"a1", "a2", "a3", "a4"}) {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilterQueryCaseInsensitive(t *testing.T) {
	got := FilterActivities(filterFixtures(), Filters{Query: "PUZZLE"})
	if !equalIDs(ids(got), []string{"a2"}) {
		t.Fatalf("got %v", ids(got))
	}
	// Query matches pillar and difficulty text too.
	got = FilterActivities(filterFixtures(), Filters{Query: "hard"})
	if !equalIDs(ids(got), []string{"a3"}) {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilterQueryThenNarrow(t *testing.T) {
	// Search first, then pillar/difficulty narrow with AND semantics.
	got := FilterActivities(filterFixtures(), Filters{Query: "mental", Difficulty: "Medium"})
	if !equalIDs(ids(got), []string{"a2", "a4"}) {
		t.Fatalf("got %v", ids(got))
	}
	got = FilterActivities(filterFixtures(), Filters{Query: "mental", Difficulty: "Hard"})
	if len(got) != 0 {
		t.Fatalf("got %v", ids(got))
	}
}

func TestFilterIdempotent(t *testing.T) {
	f := Filters{Pillar: "mental", Difficulty: "Medium"}
	once := FilterActivities(filterFixtures(), f)
	twice := FilterActivities(once, f)
	if !equalIDs(ids(once), ids(twice)) {
		t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
}
