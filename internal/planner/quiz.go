package planner

import (
	"sort"
	"time"

	"github.com/ayane-kurokawa/waggle/api/internal/catalog"
	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

const maxRecommendations = 4

// AnalyzeQuizResults aggregates quiz answers into pillar scores and derives
// the personality label and recommendations. answers maps question id to the
// selected option value; unanswered questions silently contribute zero, so
// ties are possible and resolve by pillar enumeration order. Scoring tables
// are passed in explicitly to keep this pure; callers use
// catalog.DefaultScoringTables().
func AnalyzeQuizResults(questions []catalog.QuizQuestion, answers map[string]string, tables catalog.ScoringTables, now time.Time) model.QuizResults {
	scores := make(map[model.Pillar]int, len(model.Pillars))
	for _, p := range model.Pillars {
		scores[p] = 0
	}

	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		for _, opt := range q.Options {
			if opt.Value == value {
				scores[q.Pillar] += opt.Weight
				break
			}
		}
	}

	// Enumeration order in, stable sort by descending score: ties keep the
	// mental/physical/social/environmental/instinctual order.
	ranking := make([]model.PillarRank, 0, len(model.Pillars))
	for _, p := range model.Pillars {
		ranking = append(ranking, model.PillarRank{
			Pillar: p,
			Score:  scores[p],
			Reason: tables.Reasons[p],
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	for i := range ranking {
		ranking[i].Rank = i + 1
	}

	recs := make([]string, 0, maxRecommendations)
	for _, r := range ranking[:2] {
		for i, s := range tables.Suggestions[r.Pillar] {
			if i >= 2 || len(recs) >= maxRecommendations {
				break
			}
			recs = append(recs, s)
		}
	}

	return model.QuizResults{
		Personality:     tables.Personalities[ranking[0].Pillar],
		Ranking:         ranking,
		Recommendations: recs,
		CompletedAt:     now,
	}
}
