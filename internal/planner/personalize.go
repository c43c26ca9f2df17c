package planner

import (
	"sort"

	"github.com/ayane-kurokawa/waggle/api/internal/catalog"
	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

// PersonalizedActivities re-ranks (never filters) the candidate list for a
// dog and truncates to limit. Primary key is the dog's quiz score for the
// activity's pillar (descending); ties break on breed-characteristic
// confidence, then on input order (stable). A dog without quiz results gets
// the input order back, truncated.
func PersonalizedActivities(activities []model.Activity, dog *model.Dog, limit int) []model.Activity {
	if limit <= 0 || limit > len(activities) {
		limit = len(activities)
	}

	out := make([]model.Activity, len(activities))
	copy(out, activities)

	if dog != nil && dog.QuizResults != nil && len(dog.QuizResults.Ranking) > 0 {
		scoreByPillar := make(map[model.Pillar]int, len(dog.QuizResults.Ranking))
		for _, r := range dog.QuizResults.Ranking {
			scoreByPillar[r.Pillar] = r.Score
		}
		traits := catalog.TraitsForBreed(dog.Breed)
		sort.SliceStable(out, func(i, j int) bool {
			si, sj := scoreByPillar[out[i].Pillar], scoreByPillar[out[j].Pillar]
			if si != sj {
				return si > sj
			}
			return traits.For(out[i].Pillar) > traits.For(out[j].Pillar)
		})
	}

	return out[:limit]
}
