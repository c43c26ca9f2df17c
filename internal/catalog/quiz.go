package catalog

import "github.com/ayane-kurokawa/waggle/api/internal/model"

// QuizQuestion is one personality quiz question. Each question contributes to
// exactly one pillar; the selected option's weight is added to that pillar.
type QuizQuestion struct {
	ID      string       `json:"id"`
	Pillar  model.Pillar `json:"pillar"`
	Text    string       `json:"text"`
	Options []QuizOption `json:"options"`
}

type QuizOption struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// ScoringTables are the fixed lookup tables consumed by quiz scoring. They are
// passed into the scoring function explicitly so it stays pure.
type ScoringTables struct {
	// Personalities maps the top-scoring pillar to a personality label.
	Personalities map[model.Pillar]string
	// Suggestions holds canned recommendation strings per pillar; the top two
	// ranked pillars each contribute up to two, capped at four total.
	Suggestions map[model.Pillar][]string
	// Reasons is the human-readable explanation attached to each pillar rank.
	Reasons map[model.Pillar]string
}

func DefaultScoringTables() ScoringTables {
	return ScoringTables{
		Personalities: map[model.Pillar]string{
			model.PillarMental:        "Problem Solver",
			model.PillarPhysical:      "Active Athlete",
			model.PillarSocial:        "Social Butterfly",
			model.PillarEnvironmental: "Curious Explorer",
			model.PillarInstinctual:   "Natural Hunter",
		},
		Suggestions: map[model.Pillar][]string{
			model.PillarMental: {
				"Rotate puzzle feeders so meals double as brain work.",
				"Teach one new trick or toy name each week.",
			},
			model.PillarPhysical: {
				"Schedule two high-output sessions like flirt pole or fetch sprints.",
				"Add a long decompression walk on rest days.",
			},
			model.PillarSocial: {
				"Arrange a weekly parallel walk with a steady companion dog.",
				"Practice calm settles around new people.",
			},
			model.PillarEnvironmental: {
				"Explore one brand-new walking route each week.",
				"Build a texture trail with household materials.",
			},
			model.PillarInstinctual: {
				"Offer a sanctioned dig pit or snuffle mat most days.",
				"Scatter-feed at least one meal outdoors.",
			},
		},
		Reasons: map[model.Pillar]string{
			model.PillarMental:        "Thrives on puzzles and learning new things",
			model.PillarPhysical:      "Needs regular vigorous movement to feel settled",
			model.PillarSocial:        "Recharges through time with people and dogs",
			model.PillarEnvironmental: "Lights up in new places and around new things",
			model.PillarInstinctual:   "Driven by nose, chase, and other hardwired patterns",
		},
	}
}

// QuizQuestions returns the quiz in presentation order.
func QuizQuestions() []QuizQuestion {
	out := make([]QuizQuestion, len(quizQuestions))
	copy(out, quizQuestions)
	return out
}

var quizQuestions = []QuizQuestion{
	{
		ID:     "q-puzzle",
		Pillar: model.PillarMental,
		Text:   "Faced with a treat sealed inside a puzzle, your dog...",
		Options: []QuizOption{
			{Value: "persists", Label: "Works at it until it opens", Weight: 5},
			{Value: "tries", Label: "Tries for a while, then asks for help", Weight: 3},
			{Value: "quits", Label: "Loses interest quickly", Weight: 1},
		},
	},
	{
		ID:     "q-training",
		Pillar: model.PillarMental,
		Text:   "During training sessions, your dog...",
		Options: []QuizOption{
			{Value: "eager", Label: "Offers behaviours before being asked", Weight: 5},
			{Value: "steady", Label: "Works happily for a few minutes", Weight: 3},
			{Value: "distracted", Label: "Drifts off after a rep or two", Weight: 1},
		},
	},
	{
		ID:     "q-zoomies",
		Pillar: model.PillarPhysical,
		Text:   "After a day with little exercise, your dog...",
		Options: []QuizOption{
			{Value: "wired", Label: "Bounces off the walls", Weight: 5},
			{Value: "restless", Label: "Paces a little more than usual", Weight: 3},
			{Value: "fine", Label: "Is perfectly content", Weight: 1},
		},
	},
	{
		ID:     "q-fetch",
		Pillar: model.PillarPhysical,
		Text:   "With a ball or frisbee in play, your dog...",
		Options: []QuizOption{
			{Value: "obsessed", Label: "Would chase until they dropped", Weight: 5},
			{Value: "enjoys", Label: "Enjoys a handful of throws", Weight: 3},
			{Value: "meh", Label: "Watches it roll past", Weight: 1},
		},
	},
	{
		ID:     "q-strangers",
		Pillar: model.PillarSocial,
		Text:   "When guests arrive, your dog...",
		Options: []QuizOption{
			{Value: "delighted", Label: "Greets everyone like an old friend", Weight: 5},
			{Value: "polite", Label: "Says hello, then settles", Weight: 3},
			{Value: "avoids", Label: "Keeps their distance", Weight: 1},
		},
	},
	{
		ID:     "q-dogs",
		Pillar: model.PillarSocial,
		Text:   "Around unfamiliar dogs, your dog...",
		Options: []QuizOption{
			{Value: "playful", Label: "Invites play immediately", Weight: 5},
			{Value: "selective", Label: "Warms up to the right dog", Weight: 3},
			{Value: "aloof", Label: "Prefers their own company", Weight: 1},
		},
	},
	{
		ID:     "q-newplaces",
		Pillar: model.PillarEnvironmental,
		Text:   "In a place they've never been, your dog...",
		Options: []QuizOption{
			{Value: "explores", Label: "Has to investigate every corner", Weight: 5},
			{Value: "curious", Label: "Explores with occasional check-ins", Weight: 3},
			{Value: "clingy", Label: "Sticks close until it feels familiar", Weight: 1},
		},
	},
	{
		ID:     "q-novelty",
		Pillar: model.PillarEnvironmental,
		Text:   "A strange object appears on the usual walk. Your dog...",
		Options: []QuizOption{
			{Value: "investigates", Label: "Marches straight up to inspect it", Weight: 5},
			{Value: "cautious", Label: "Approaches slowly, sniffs, moves on", Weight: 3},
			{Value: "wary", Label: "Gives it a wide berth", Weight: 1},
		},
	},
	{
		ID:     "q-nose",
		Pillar: model.PillarInstinctual,
		Text:   "On walks, your dog's nose...",
		Options: []QuizOption{
			{Value: "glued", Label: "Is glued to the ground the whole way", Weight: 5},
			{Value: "sniffy", Label: "Gets a good sniff at the highlights", Weight: 3},
			{Value: "headsup", Label: "Mostly stays up watching the world", Weight: 1},
		},
	},
	{
		ID:     "q-chase",
		Pillar: model.PillarInstinctual,
		Text:   "A squirrel bolts across the path. Your dog...",
		Options: []QuizOption{
			{Value: "launches", Label: "Launches before you can blink", Weight: 5},
			{Value: "alerts", Label: "Locks on but holds with a reminder", Weight: 3},
			{Value: "ignores", Label: "Barely clocks it", Weight: 1},
		},
	},
}
