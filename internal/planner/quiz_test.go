package planner

import (
	"testing"
	"time"

	"github.com/ayane-kurokawa/waggle/api/internal/catalog"
	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

var quizNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestAnalyzeQuizResultsSingleQuestion(t *testing.T) {
	questions := []catalog.QuizQuestion{{
		ID:     "q1",
		Pillar: model.PillarPhysical,
		Options: []catalog.QuizOption{
			{Value: "a", Weight: 5},
			{Value: "b", Weight: 1},
		},
	}}
	res := AnalyzeQuizResults(questions, map[string]string{"q1": "a"}, catalog.DefaultScoringTables(), quizNow)

	top := res.Ranking[0]
	if top.Pillar != model.PillarPhysical || top.Rank != 1 || top.Score != 5 {
		t.Fatalf("top rank = %+v", top)
	}
	if res.Personality != "Active Athlete" {
		t.Fatalf("personality = %q", res.Personality)
	}
}

func TestAnalyzeQuizResultsAllZero(t *testing.T) {
	res := AnalyzeQuizResults(catalog.QuizQuestions(), nil, catalog.DefaultScoringTables(), quizNow)

	if len(res.Ranking) != len(model.Pillars) {
		t.Fatalf("ranking has %d entries", len(res.Ranking))
	}
	for i, r := range res.Ranking {
		if r.Score != 0 {
			t.Errorf("pillar %s score = %d, want 0", r.Pillar, r.Score)
		}
		if r.Rank != i+1 {
			t.Errorf("rank[%d] = %d", i, r.Rank)
		}
		// Ties resolve by enumeration order.
		if r.Pillar != model.Pillars[i] {
			t.Errorf("ranking[%d] = %s, want %s", i, r.Pillar, model.Pillars[i])
		}
	}
	// Documented tie-break: first pillar's label wins.
	if res.Personality != "Problem Solver" {
		t.Fatalf("personality = %q", res.Personality)
	}
}

func TestAnalyzeQuizResultsRankingIsTotalOrder(t *testing.T) {
	questions := catalog.QuizQuestions()
	answers := map[string]string{}
	for _, q := range questions {
		answers[q.ID] = q.Options[0].Value
	}
	res := AnalyzeQuizResults(questions, answers, catalog.DefaultScoringTables(), quizNow)

	seen := map[model.Pillar]bool{}
	for i, r := range res.Ranking {
		if seen[r.Pillar] {
			t.Fatalf("pillar %s ranked twice", r.Pillar)
		}
		seen[r.Pillar] = true
		if r.Rank != i+1 {
			t.Fatalf("rank sequence broken at %d: %d", i, r.Rank)
		}
		if i > 0 && res.Ranking[i-1].Score < r.Score {
			t.Fatalf("ranking not descending at %d", i)
		}
	}
	if len(seen) != 5 {
		t.Fatalf("ranking covers %d pillars", len(seen))
	}
}

func TestAnalyzeQuizResultsUnansweredSkippedSilently(t *testing.T) {
	questions := []catalog.QuizQuestion{
		{ID: "q1", Pillar: model.PillarMental, Options: []catalog.QuizOption{{Value: "a", Weight: 5}}},
		{ID: "q2", Pillar: model.PillarSocial, Options: []catalog.QuizOption{{Value: "a", Weight: 5}}},
	}
	// q2 left unanswered; an unknown option value also contributes nothing.
	res := AnalyzeQuizResults(questions, map[string]string{"q1": "a", "q3": "bogus"}, catalog.DefaultScoringTables(), quizNow)
	if res.Ranking[0].Pillar != model.PillarMental || res.Ranking[0].Score != 5 {
		t.Fatalf("top = %+v", res.Ranking[0])
	}
	for _, r := range res.Ranking[1:] {
		if r.Score != 0 {
			t.Fatalf("pillar %s picked up a phantom score %d", r.Pillar, r.Score)
		}
	}
}

func TestAnalyzeQuizResultsRecommendations(t *testing.T) {
	questions := []catalog.QuizQuestion{
		{ID: "q1", Pillar: model.PillarInstinctual, Options: []catalog.QuizOption{{Value: "a", Weight: 9}}},
		{ID: "q2", Pillar: model.PillarPhysical, Options: []catalog.QuizOption{{Value: "a", Weight: 5}}},
	}
	tables := catalog.DefaultScoringTables()
	res := AnalyzeQuizResults(questions, map[string]string{"q1": "a", "q2": "a"}, tables, quizNow)

	if len(res.Recommendations) != 4 {
		t.Fatalf("got %d recommendations, want 4", len(res.Recommendations))
	}
	// Top two pillars contribute two suggestions each, top pillar first.
	if res.Recommendations[0] != tables.Suggestions[model.PillarInstinctual][0] {
		t.Fatalf("first recommendation = %q", res.Recommendations[0])
	}
	if res.Recommendations[2] != tables.Suggestions[model.PillarPhysical][0] {
		t.Fatalf("third recommendation = %q", res.Recommendations[2])
	}
	if res.CompletedAt != quizNow {
		t.Fatalf("completed at = %v", res.CompletedAt)
	}
}
