package catalog

import (
	"testing"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

func TestLibraryIntegrity(t *testing.T) {
	lib := Library()
	if len(lib) == 0 {
		t.Fatal("library is empty")
	}

	seen := map[string]bool{}
	covered := map[model.Pillar]bool{}
	for _, a := range lib {
		if a.ID == "" {
			t.Fatalf("activity %q has no id", a.Title)
		}
		if seen[a.ID] {
			t.Fatalf("duplicate activity id %s", a.ID)
		}
		seen[a.ID] = true
		if a.Kind != model.KindLibrary {
			t.Errorf("%s: kind = %s, want library", a.ID, a.Kind)
		}
		if !model.ValidPillar(string(a.Pillar)) {
			t.Errorf("%s: invalid pillar %s", a.ID, a.Pillar)
		}
		if !model.ValidDifficulty(string(a.Difficulty)) {
			t.Errorf("%s: invalid difficulty %s", a.ID, a.Difficulty)
		}
		if a.DurationMinutes <= 0 {
			t.Errorf("%s: duration %d", a.ID, a.DurationMinutes)
		}
		covered[a.Pillar] = true
	}
	for _, p := range model.Pillars {
		if !covered[p] {
			t.Errorf("no library activity for pillar %s", p)
		}
	}
}

func TestLibraryReturnsCopy(t *testing.T) {
	a := Library()
	a[0].Title = "mutated"
	if Library()[0].Title == "mutated" {
		t.Fatal("Library exposes shared backing array")
	}
}

func TestQuizQuestionsIntegrity(t *testing.T) {
	questions := QuizQuestions()
	if len(questions) == 0 {
		t.Fatal("no quiz questions")
	}

	perPillar := map[model.Pillar]int{}
	for _, q := range questions {
		if q.ID == "" || q.Text == "" {
			t.Fatalf("question %+v missing id or text", q)
		}
		if !model.ValidPillar(string(q.Pillar)) {
			t.Errorf("%s: invalid pillar %s", q.ID, q.Pillar)
		}
		if len(q.Options) < 2 {
			t.Errorf("%s: only %d options", q.ID, len(q.Options))
		}
		for _, o := range q.Options {
			if o.Value == "" || o.Label == "" {
				t.Errorf("%s: option missing value or label", q.ID)
			}
			if o.Weight < 0 {
				t.Errorf("%s/%s: negative weight", q.ID, o.Value)
			}
		}
		perPillar[q.Pillar]++
	}
	for _, p := range model.Pillars {
		if perPillar[p] == 0 {
			t.Errorf("no question themed on pillar %s", p)
		}
	}
}

func TestDefaultScoringTablesComplete(t *testing.T) {
	tables := DefaultScoringTables()
	for _, p := range model.Pillars {
		if tables.Personalities[p] == "" {
			t.Errorf("no personality label for %s", p)
		}
		if len(tables.Suggestions[p]) == 0 {
			t.Errorf("no suggestions for %s", p)
		}
		if tables.Reasons[p] == "" {
			t.Errorf("no reason copy for %s", p)
		}
	}
}

func TestTraitsForBreed(t *testing.T) {
	collie := TraitsForBreed("Border Collie")
	lab := TraitsForBreed("unknown mix")
	if collie.For(model.PillarMental) <= lab.For(model.PillarMental) {
		t.Fatal("border collie should outrank an unknown breed on mental confidence")
	}
	// Substring match covers entries like "border collie mix".
	mix := TraitsForBreed("border collie mix")
	if mix.For(model.PillarMental) != collie.For(model.PillarMental) {
		t.Fatal("substring breed match should resolve to the same traits")
	}
}
