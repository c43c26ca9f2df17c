// Package catalog holds the static curated content: the built-in activity
// library, the personality quiz, and the scoring tables. Everything here is
// immutable; callers must not modify returned slices in place.
package catalog

import "github.com/ayane-kurokawa/waggle/api/internal/model"

// Library returns the curated activity library in its canonical order.
func Library() []model.Activity {
	out := make([]model.Activity, len(library))
	copy(out, library)
	return out
}

var library = []model.Activity{
	{
		ID:              "lib-snuffle-mat",
		Kind:            model.KindLibrary,
		Title:           "Snuffle Mat Foraging",
		Pillar:          model.PillarInstinctual,
		Difficulty:      model.DifficultyEasy,
		DurationMinutes: 15,
		Materials:       []string{"snuffle mat", "kibble or small treats"},
		Instructions: []string{
			"Scatter kibble deep into the mat fibres.",
			"Let your dog sniff out every piece at their own pace.",
		},
		EmotionalGoals: []string{"calm focus", "satisfaction"},
		Tags:           []string{"scent work", "indoor", "food"},
		AgeGroup:       "all",
		EnergyLevel:    "low",
	},
	{
		ID:              "lib-puzzle-feeder",
		Kind:            model.KindLibrary,
		Title:           "Puzzle Feeder Challenge",
		Pillar:          model.PillarMental,
		Difficulty:      model.DifficultyMedium,
		DurationMinutes: 20,
		Materials:       []string{"puzzle feeder", "high-value treats"},
		Instructions: []string{
			"Load the feeder and show it to your dog once.",
			"Step back and let them work it out without help.",
		},
		EmotionalGoals: []string{"problem solving", "confidence"},
		Tags:           []string{"puzzle", "indoor", "food"},
		AgeGroup:       "adult",
		EnergyLevel:    "low",
	},
	{
		ID:              "lib-name-that-toy",
		Kind:            model.KindLibrary,
		Title:           "Name That Toy",
		Pillar:          model.PillarMental,
		Difficulty:      model.DifficultyHard,
		DurationMinutes: 15,
		Materials:       []string{"3+ distinct toys"},
		Instructions: []string{
			"Teach one toy name at a time with short reward sessions.",
			"Ask for a named toy from a pile of two, then three.",
		},
		EmotionalGoals: []string{"focus", "pride"},
		Tags:           []string{"training", "indoor"},
		AgeGroup:       "adult",
		EnergyLevel:    "low",
	},
	{
		ID:              "lib-flirt-pole",
		Kind:            model.KindLibrary,
		Title:           "Flirt Pole Sprints",
		Pillar:          model.PillarPhysical,
		Difficulty:      model.DifficultyMedium,
		DurationMinutes: 10,
		Materials:       []string{"flirt pole"},
		Instructions: []string{
			"Drag the lure in wide arcs and let your dog chase.",
			"Allow regular catches and build in settle breaks.",
		},
		EmotionalGoals: []string{"outlet for chase drive", "joy"},
		Tags:           []string{"chase", "outdoor", "high intensity"},
		AgeGroup:       "adult",
		EnergyLevel:    "high",
	},
	{
		ID:              "lib-hill-walk",
		Kind:            model.KindLibrary,
		Title:           "Decompression Hill Walk",
		Pillar:          model.PillarPhysical,
		Difficulty:      model.DifficultyEasy,
		DurationMinutes: 40,
		Materials:       []string{"long line", "harness"},
		Instructions: []string{
			"Pick a quiet hilly route on a 5m+ line.",
			"Let your dog set the pace and sniff freely.",
		},
		EmotionalGoals: []string{"decompression", "fitness"},
		Tags:           []string{"walk", "outdoor"},
		AgeGroup:       "all",
		EnergyLevel:    "moderate",
	},
	{
		ID:              "lib-parallel-walk",
		Kind:            model.KindLibrary,
		Title:           "Parallel Walk With a Friend",
		Pillar:          model.PillarSocial,
		Difficulty:      model.DifficultyMedium,
		DurationMinutes: 30,
		Materials:       []string{"a calm companion dog", "two handlers"},
		Instructions: []string{
			"Walk both dogs in the same direction a road-width apart.",
			"Close the gap gradually only while both stay loose and easy.",
		},
		EmotionalGoals: []string{"social confidence", "calm company"},
		Tags:           []string{"social", "outdoor"},
		AgeGroup:       "all",
		EnergyLevel:    "moderate",
	},
	{
		ID:              "lib-cafe-settle",
		Kind:            model.KindLibrary,
		Title:           "Cafe Settle Practice",
		Pillar:          model.PillarSocial,
		Difficulty:      model.DifficultyHard,
		DurationMinutes: 25,
		Materials:       []string{"mat", "chew", "quiet cafe corner"},
		Instructions: []string{
			"Settle your dog on a mat under the table with a chew.",
			"Reward quiet observation of people passing by.",
		},
		EmotionalGoals: []string{"neutrality around strangers"},
		Tags:           []string{"social", "public", "settle"},
		AgeGroup:       "adult",
		EnergyLevel:    "low",
	},
	{
		ID:              "lib-texture-trail",
		Kind:            model.KindLibrary,
		Title:           "Texture Trail",
		Pillar:          model.PillarEnvironmental,
		Difficulty:      model.DifficultyEasy,
		DurationMinutes: 15,
		Materials:       []string{"cardboard, towels, bubble wrap, grass mats"},
		Instructions: []string{
			"Lay a short trail of unfamiliar surfaces.",
			"Scatter treats along it and let your dog explore at will.",
		},
		EmotionalGoals: []string{"body awareness", "novelty tolerance"},
		Tags:           []string{"novelty", "indoor", "confidence"},
		AgeGroup:       "puppy",
		EnergyLevel:    "low",
	},
	{
		ID:              "lib-new-route",
		Kind:            model.KindLibrary,
		Title:           "Brand New Route Day",
		Pillar:          model.PillarEnvironmental,
		Difficulty:      model.DifficultyEasy,
		DurationMinutes: 30,
		Materials:       []string{"leash"},
		Instructions: []string{
			"Drive or walk to a neighbourhood your dog has never visited.",
			"Follow their nose; the route is theirs today.",
		},
		EmotionalGoals: []string{"curiosity", "enrichment through novelty"},
		Tags:           []string{"walk", "outdoor", "novelty"},
		AgeGroup:       "all",
		EnergyLevel:    "moderate",
	},
	{
		ID:              "lib-dig-pit",
		Kind:            model.KindLibrary,
		Title:           "Sanctioned Dig Pit",
		Pillar:          model.PillarInstinctual,
		Difficulty:      model.DifficultyMedium,
		DurationMinutes: 20,
		Materials:       []string{"sandbox or dig pit", "buried toys"},
		Instructions: []string{
			"Bury a few toys shallow, then deeper over sessions.",
			"Cue digging in the pit and celebrate every find.",
		},
		EmotionalGoals: []string{"outlet for digging drive"},
		Tags:           []string{"digging", "outdoor"},
		AgeGroup:       "all",
		EnergyLevel:    "moderate",
	},
	{
		ID:              "lib-scatter-garden",
		Kind:            model.KindLibrary,
		Title:           "Garden Scatter Feed",
		Pillar:          model.PillarInstinctual,
		Difficulty:      model.DifficultyEasy,
		DurationMinutes: 10,
		Materials:       []string{"a meal's worth of kibble"},
		Instructions: []string{
			"Scatter the meal across safe grass.",
			"Let your dog forage the lot unhurried.",
		},
		EmotionalGoals: []string{"calm", "natural foraging"},
		Tags:           []string{"scent work", "outdoor", "food"},
		AgeGroup:       "all",
		EnergyLevel:    "low",
	},
	{
		ID:              "lib-trick-chain",
		Kind:            model.KindLibrary,
		Title:           "Three-Trick Chain",
		Pillar:          model.PillarMental,
		Difficulty:      model.DifficultyMedium,
		DurationMinutes: 15,
		Materials:       []string{"treats"},
		Instructions: []string{
			"Pick three known tricks and chain them back to back.",
			"Reward only at the end of the full chain.",
		},
		EmotionalGoals: []string{"engagement", "mental fatigue in a good way"},
		Tags:           []string{"training", "indoor"},
		AgeGroup:       "all",
		EnergyLevel:    "low",
	},
}
