package model

import "time"

type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            *string    `json:"name"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Pillar is one of the five fixed enrichment categories.
type Pillar string

const (
	PillarMental        Pillar = "mental"
	PillarPhysical      Pillar = "physical"
	PillarSocial        Pillar = "social"
	PillarEnvironmental Pillar = "environmental"
	PillarInstinctual   Pillar = "instinctual"
)

// Pillars is the canonical enumeration order. Quiz tie-breaks depend on it.
var Pillars = []Pillar{
	PillarMental,
	PillarPhysical,
	PillarSocial,
	PillarEnvironmental,
	PillarInstinctual,
}

func ValidPillar(p string) bool {
	for _, v := range Pillars {
		if string(v) == p {
			return true
		}
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func ValidDifficulty(d string) bool {
	switch Difficulty(d) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Dog struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	Name          string       `json:"name"`
	Breed         string       `json:"breed"`
	AgeYears      int          `json:"age_years"`
	WeightKg      *float64     `json:"weight_kg,omitempty"`
	ActivityLevel string       `json:"activity_level"` // low | moderate | high
	SpecialNeeds  *string      `json:"special_needs,omitempty"`
	PhotoURL      *string      `json:"photo_url,omitempty"`
	QuizResults   *QuizResults `json:"quiz_results,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type ScheduledActivity struct {
	ID              string    `json:"id"`
	DogID           string    `json:"dog_id"`
	ActivityID      string    `json:"activity_id"`
	ScheduledDate   string    `json:"scheduled_date"` // YYYY-MM-DD
	Completed       bool      `json:"completed"`
	Notes           *string   `json:"notes,omitempty"`
	CompletionNotes *string   `json:"completion_notes,omitempty"`
	Reminder        bool      `json:"reminder"`
	WeekNumber      *int      `json:"week_number,omitempty"` // ISO week, derived from scheduled_date
	DayOfWeek       *int      `json:"day_of_week,omitempty"` // 0=Sunday .. 6=Saturday
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ActivityKind discriminates the activity union.
type ActivityKind string

const (
	KindLibrary    ActivityKind = "library"
	KindDiscovered ActivityKind = "discovered"
	KindUser       ActivityKind = "user"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Activity is the catalog union: curated library entries, externally
// discovered entries, and user-created ones, discriminated by Kind.
type Activity struct {
	ID              string       `json:"id"`
	Kind            ActivityKind `json:"kind"`
	Title           string       `json:"title"`
	Pillar          Pillar       `json:"pillar"`
	Difficulty      Difficulty   `json:"difficulty"`
	DurationMinutes int          `json:"duration_minutes"`
	Materials       []string     `json:"materials,omitempty"`
	Instructions    []string     `json:"instructions,omitempty"`
	EmotionalGoals  []string     `json:"emotional_goals,omitempty"`
	Tags            []string     `json:"tags,omitempty"`
	AgeGroup        string       `json:"age_group,omitempty"`
	EnergyLevel     string       `json:"energy_level,omitempty"`

	// Discovered-only fields.
	SourceURL    *string         `json:"source_url,omitempty"`
	DiscoveredAt *time.Time      `json:"discovered_at,omitempty"`
	Verified     bool            `json:"verified,omitempty"`
	QualityScore *float64        `json:"quality_score,omitempty"` // [0,1]
	Approval     *ApprovalStatus `json:"approval,omitempty"`
}

type PillarRank struct {
	Pillar Pillar `json:"pillar"`
	Rank   int    `json:"rank"` // 1..5
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

type QuizResults struct {
	DogID           string       `json:"dog_id"`
	Personality     string       `json:"personality"`
	Ranking         []PillarRank `json:"ranking"` // exactly five, descending score
	Recommendations []string     `json:"recommendations"`
	CompletedAt     time.Time    `json:"completed_at"`
}

type ContentDiscoveryConfig struct {
	UserID           string     `json:"user_id"`
	Enabled          bool       `json:"enabled"`
	Frequency        string     `json:"frequency"` // weekly | monthly
	MaxPerRun        int        `json:"max_per_run"`
	Sources          []string   `json:"sources"`
	BreedSpecific    bool       `json:"breed_specific"`
	QualityThreshold float64    `json:"quality_threshold"`
	LastRunAt        *time.Time `json:"last_run_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type JournalEntry struct {
	ID        string    `json:"id"`
	DogID     string    `json:"dog_id"`
	EntryDate string    `json:"entry_date"` // YYYY-MM-DD
	Mood      *string   `json:"mood,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// PillarProgress is one pillar row in the weekly progress view.
type PillarProgress struct {
	Pillar    Pillar `json:"pillar"`
	Scheduled int    `json:"scheduled"`
	Completed int    `json:"completed"`
}

type WeeklyProgress struct {
	DogID          string           `json:"dog_id"`
	Year           int              `json:"year"`
	Week           int              `json:"week"`
	WeekStart      string           `json:"week_start"` // YYYY-MM-DD (Monday)
	Scheduled      int              `json:"scheduled"`
	Completed      int              `json:"completed"`
	CompletionRate float64          `json:"completion_rate"`
	Pillars        []PillarProgress `json:"pillars"`
	StreakDays     int              `json:"streak_days"`
}
