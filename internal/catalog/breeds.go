package catalog

import (
	"strings"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

// BreedTraits holds per-pillar confidence values in [0,1] describing how
// strongly a breed is typically drawn to each pillar. Used only as a
// tie-break in personalization; quiz results always take precedence.
type BreedTraits struct {
	Confidence map[model.Pillar]float64
}

var breedTraits = map[string]BreedTraits{
	"border collie": {Confidence: map[model.Pillar]float64{
		model.PillarMental: 0.95, model.PillarPhysical: 0.9, model.PillarInstinctual: 0.7,
		model.PillarSocial: 0.4, model.PillarEnvironmental: 0.5,
	}},
	"labrador retriever": {Confidence: map[model.Pillar]float64{
		model.PillarSocial: 0.85, model.PillarPhysical: 0.8, model.PillarInstinctual: 0.6,
		model.PillarMental: 0.55, model.PillarEnvironmental: 0.5,
	}},
	"beagle": {Confidence: map[model.Pillar]float64{
		model.PillarInstinctual: 0.95, model.PillarEnvironmental: 0.6, model.PillarSocial: 0.6,
		model.PillarPhysical: 0.5, model.PillarMental: 0.4,
	}},
	"german shepherd": {Confidence: map[model.Pillar]float64{
		model.PillarMental: 0.85, model.PillarPhysical: 0.8, model.PillarInstinctual: 0.65,
		model.PillarEnvironmental: 0.5, model.PillarSocial: 0.45,
	}},
	"greyhound": {Confidence: map[model.Pillar]float64{
		model.PillarPhysical: 0.75, model.PillarInstinctual: 0.8, model.PillarSocial: 0.5,
		model.PillarEnvironmental: 0.4, model.PillarMental: 0.35,
	}},
	"terrier": {Confidence: map[model.Pillar]float64{
		model.PillarInstinctual: 0.9, model.PillarPhysical: 0.7, model.PillarMental: 0.55,
		model.PillarEnvironmental: 0.5, model.PillarSocial: 0.45,
	}},
	"poodle": {Confidence: map[model.Pillar]float64{
		model.PillarMental: 0.85, model.PillarSocial: 0.7, model.PillarPhysical: 0.6,
		model.PillarEnvironmental: 0.55, model.PillarInstinctual: 0.45,
	}},
}

// TraitsForBreed matches loosely: exact name first, then substring, so
// "jack russell terrier" picks up the terrier profile. Unknown breeds get an
// empty profile (zero confidence everywhere).
func TraitsForBreed(breed string) BreedTraits {
	b := strings.ToLower(strings.TrimSpace(breed))
	if b == "" {
		return BreedTraits{}
	}
	if t, ok := breedTraits[b]; ok {
		return t
	}
	for name, t := range breedTraits {
		if strings.Contains(b, name) {
			return t
		}
	}
	return BreedTraits{}
}

func (t BreedTraits) For(p model.Pillar) float64 {
	if t.Confidence == nil {
		return 0
	}
	return t.Confidence[p]
}
