package service

import (
	"strings"
	"testing"
	"time"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
	"github.com/mmcdole/gofeed"
)

func TestInferPillar(t *testing.T) {
	tests := []struct {
		text string
		want model.Pillar
	}{
		{"DIY puzzle feeder your dog will love", model.PillarMental},
		{"Scent work games: let that nose forage", model.PillarInstinctual},
		{"Backyard agility and fetch drills", model.PillarPhysical},
		{"Organizing a calm playdate with a new friend", model.PillarSocial},
		{"Take your dog on an outdoor adventure trail", model.PillarEnvironmental},
		{"completely unrelated gardening article", model.PillarMental}, // fallback
	}
	for _, tt := range tests {
		if got := InferPillar(tt.text); got != tt.want {
			t.Errorf("InferPillar(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestInferDifficulty(t *testing.T) {
	if got := InferDifficulty("Advanced scent trials for expert teams"); got != model.DifficultyHard {
		t.Errorf("got %s", got)
	}
	if got := InferDifficulty("Take fetch to the next level"); got != model.DifficultyMedium {
		t.Errorf("got %s", got)
	}
	if got := InferDifficulty("Five minute sniffy walk"); got != model.DifficultyEasy {
		t.Errorf("got %s", got)
	}
}

func TestEstimateQuality(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, -1, 0)

	thin := &gofeed.Item{Title: "x", Link: "https://example.com/post", Description: "short"}
	rich := &gofeed.Item{
		Title:           "Border collie brain games",
		Link:            "https://www.akc.org/enrichment/brain-games",
		Description:     strings.Repeat("detailed instructions ", 20),
		Categories:      []string{"enrichment"},
		PublishedParsed: &recent,
	}

	lo := EstimateQuality(thin, "", now)
	hi := EstimateQuality(rich, "border collie", now)
	if lo >= hi {
		t.Fatalf("thin entry (%.2f) should score below rich entry (%.2f)", lo, hi)
	}
	if lo < 0 || lo > 1 || hi < 0 || hi > 1 {
		t.Fatalf("scores out of range: %.2f, %.2f", lo, hi)
	}
	// Components are tenths and must sum exactly despite float accumulation.
	if hi != 1.0 {
		t.Fatalf("rich entry should saturate at exactly 1.0, got %.17g", hi)
	}

	// Breed relevance moves the needle.
	base := EstimateQuality(rich, "", now)
	if base != 0.9 {
		t.Fatalf("rich entry without breed should score exactly 0.9, got %.17g", base)
	}
	if hi <= base {
		t.Fatalf("breed-relevant entry should score above %.2f, got %.2f", base, hi)
	}
}
