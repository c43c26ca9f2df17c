package planner

import (
	"strings"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

// Filters narrows an activity list. Empty or "all" fields are no-ops.
type Filters struct {
	Query      string
	Pillar     string
	Difficulty string
}

// FilterActivities returns the sublist of activities matching all filters,
// preserving relative order. A non-empty query is applied first as a
// case-insensitive substring match over title, pillar, and difficulty;
// pillar/difficulty then narrow further (AND semantics). Idempotent.
func FilterActivities(activities []model.Activity, f Filters) []model.Activity {
	out := activities
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		matched := make([]model.Activity, 0, len(out))
		for _, a := range out {
			if strings.Contains(strings.ToLower(a.Title), q) ||
				strings.Contains(strings.ToLower(string(a.Pillar)), q) ||
				strings.Contains(strings.ToLower(string(a.Difficulty)), q) {
				matched = append(matched, a)
			}
		}
		out = matched
	}
	if f.Pillar != "" && f.Pillar != "all" {
		matched := make([]model.Activity, 0, len(out))
		for _, a := range out {
			if string(a.Pillar) == f.Pillar {
				matched = append(matched, a)
			}
		}
		out = matched
	}
	if f.Difficulty != "" && f.Difficulty != "all" {
		matched := make([]model.Activity, 0, len(out))
		for _, a := range out {
			if string(a.Difficulty) == f.Difficulty {
				matched = append(matched, a)
			}
		}
		out = matched
	}
	return out
}
