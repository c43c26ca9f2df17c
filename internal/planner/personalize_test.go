package planner

import (
	"testing"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

func personalizeFixtures() []model.Activity {
	return []model.Activity{
		{ID: "p1", Pillar: model.PillarPhysical},
		{ID: "m1", Pillar: model.PillarMental},
		{ID: "s1", Pillar: model.PillarSocial},
		{ID: "m2", Pillar: model.PillarMental},
	}
}

func quizDog(topPillar model.Pillar) *model.Dog {
	ranking := []model.PillarRank{
		{Pillar: topPillar, Rank: 1, Score: 10},
		{Pillar: model.PillarSocial, Rank: 2, Score: 6},
		{Pillar: model.PillarPhysical, Rank: 3, Score: 4},
	}
	return &model.Dog{
		ID:          "dog-1",
		Breed:       "border collie",
		QuizResults: &model.QuizResults{Ranking: ranking},
	}
}

func TestPersonalizedActivitiesNoQuizTruncates(t *testing.T) {
	got := PersonalizedActivities(personalizeFixtures(), &model.Dog{ID: "dog-1"}, 2)
	if !equalIDs(ids(got), []string{"p1", "m1"}) {
		t.Fatalf("no-quiz dog should get plain truncation, got %v", ids(got))
	}
}

func TestPersonalizedActivitiesRanksByQuizScore(t *testing.T) {
	got := PersonalizedActivities(personalizeFixtures(), quizDog(model.PillarMental), 0)
	// Mental (10) > Social (6) > Physical (4); equal-score mental items keep
	// input order.
	if !equalIDs(ids(got), []string{"m1", "m2", "s1", "p1"}) {
		t.Fatalf("got %v", ids(got))
	}
}

func TestPersonalizedActivitiesRerankNotFilter(t *testing.T) {
	got := PersonalizedActivities(personalizeFixtures(), quizDog(model.PillarMental), 10)
	if len(got) != 4 {
		t.Fatalf("personalization must never drop items, got %d", len(got))
	}
}

func TestPersonalizedActivitiesLimit(t *testing.T) {
	got := PersonalizedActivities(personalizeFixtures(), quizDog(model.PillarMental), 1)
	if !equalIDs(ids(got), []string{"m1"}) {
		t.Fatalf("got %v", ids(got))
	}
}

func TestPersonalizedActivitiesBreedTieBreak(t *testing.T) {
	// Both pillars score 5; a border collie's mental confidence (0.95)
	// outranks social (0.4).
	dog := &model.Dog{
		ID:    "dog-1",
		Breed: "border collie",
		QuizResults: &model.QuizResults{Ranking: []model.PillarRank{
			{Pillar: model.PillarSocial, Rank: 1, Score: 5},
			{Pillar: model.PillarMental, Rank: 2, Score: 5},
		}},
	}
	in := []model.Activity{
		{ID: "s1", Pillar: model.PillarSocial},
		{ID: "m1", Pillar: model.PillarMental},
	}
	got := PersonalizedActivities(in, dog, 0)
	if !equalIDs(ids(got), []string{"m1", "s1"}) {
		t.Fatalf("got %v", ids(got))
	}
}
