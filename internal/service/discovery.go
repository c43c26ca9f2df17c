package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/mmcdole/gofeed"
)

// DiscoveredCandidate is a feed entry classified into an activity candidate,
// before persistence and approval.
type DiscoveredCandidate struct {
	Title           string
	SourceURL       string
	Pillar          model.Pillar
	Difficulty      model.Difficulty
	DurationMinutes int
	Tags            []string
	QualityScore    float64
}

// Discoverer fetches enrichment content feeds and turns entries into
// activity candidates.
type Discoverer struct {
	parser *gofeed.Parser
}

func NewDiscoverer() *Discoverer {
	return &Discoverer{parser: gofeed.NewParser()}
}

// FetchCandidates parses one feed URL and classifies its entries. Entries
// without a link are skipped. breed may be empty; when set, breed-relevant
// entries get a quality bump.
func (d *Discoverer) FetchCandidates(ctx context.Context, feedURL, breed string, now time.Time) ([]DiscoveredCandidate, error) {
	feed, err := d.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DiscoveredCandidate, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry.Link == "" || strings.TrimSpace(entry.Title) == "" {
			continue
		}
		text := entry.Title + " " + entry.Description
		out = append(out, DiscoveredCandidate{
			Title:           strings.TrimSpace(entry.Title),
			SourceURL:       entry.Link,
			Pillar:          InferPillar(text),
			Difficulty:      InferDifficulty(text),
			DurationMinutes: 15,
			Tags:            entry.Categories,
			QualityScore:    EstimateQuality(entry, breed, now),
		})
	}
	return out, nil
}

var pillarKeywords = map[model.Pillar][]string{
	model.PillarMental:        {"puzzle", "brain", "training", "trick", "problem", "learn"},
	model.PillarPhysical:      {"exercise", "run", "fetch", "agility", "swim", "hike", "walk"},
	model.PillarSocial:        {"social", "playdate", "daycare", "greeting", "friend", "group"},
	model.PillarEnvironmental: {"explore", "new place", "adventure", "outdoor", "novel", "trail"},
	model.PillarInstinctual:   {"sniff", "scent", "nose", "forage", "dig", "chew", "hunt", "shred"},
}

// InferPillar picks the pillar with the most keyword hits in the text,
// falling back to mental. Ties resolve in enumeration order.
func InferPillar(text string) model.Pillar {
	t := strings.ToLower(text)
	best := model.PillarMental
	bestHits := 0
	for _, p := range model.Pillars {
		hits := 0
		for _, kw := range pillarKeywords[p] {
			if strings.Contains(t, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = p, hits
		}
	}
	return best
}

// InferDifficulty maps wording to the difficulty enum, defaulting to Easy.
func InferDifficulty(text string) model.Difficulty {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "advanced") || strings.Contains(t, "expert") || strings.Contains(t, "challenging"):
		return model.DifficultyHard
	case strings.Contains(t, "intermediate") || strings.Contains(t, "step up") || strings.Contains(t, "next level"):
		return model.DifficultyMedium
	default:
		return model.DifficultyEasy
	}
}

// Sources we've found to publish consistently usable enrichment content.
var reputableHosts = []string{
	"akc.org",
	"aspca.org",
	"whole-dog-journal.com",
	"preventivevet.com",
}

// EstimateQuality scores a feed entry in [0,1]. The heuristic rewards
// substantial descriptions, categorized posts, recency, known-good hosts,
// and (when a breed is given) breed-relevant content.
func EstimateQuality(entry *gofeed.Item, breed string, now time.Time) float64 {
	score := 0.3

	if len(strings.TrimSpace(entry.Description)) >= 200 {
		score += 0.2
	} else if len(strings.TrimSpace(entry.Description)) >= 50 {
		score += 0.1
	}
	if len(entry.Categories) > 0 {
		score += 0.1
	}
	if entry.PublishedParsed != nil && now.Sub(*entry.PublishedParsed) < 180*24*time.Hour {
		score += 0.1
	}
	link := strings.ToLower(entry.Link)
	for _, host := range reputableHosts {
		if strings.Contains(link, host) {
			score += 0.2
			break
		}
	}
	if breed != "" {
		b := strings.ToLower(strings.TrimSpace(breed))
		text := strings.ToLower(entry.Title + " " + entry.Description)
		if b != "" && strings.Contains(text, b) {
			score += 0.1
		}
	}

	// Every component is a tenth; round off accumulation error so full marks
	// land exactly on 1.0.
	score = math.Round(score*10) / 10
	if score > 1 {
		score = 1
	}
	return score
}
