// Package match implements the compatibility scorer and the matchmaking
// engine. Both are pure: they operate on pet records already loaded from the
// store and perform no I/O of their own.
package match

import (
	"math"
	"strings"

	"github.com/petmatch/petmatch-server/internal/domain"
)

// Breakdown is the four-score compatibility structure produced per pet pair.
type Breakdown struct {
	BreedCompatibility   int `json:"breedCompatibility"`
	AgeCompatibility     int `json:"ageCompatibility"`
	PersonalityMatch     int `json:"personalityMatch"`
	OverallCompatibility int `json:"overallCompatibility"`
}

// Score produces the compatibility breakdown for a pet pair.
//
// Either pet lacking a breed or temperament makes the pair unscorable; the
// second return is false and the caller is expected to skip the pair rather
// than error. Age participates as a plain number (zero included).
//
// All string comparisons are case-insensitive. The overall score is the mean
// of the three sub-scores rounded to the nearest integer, ties rounding up.
func Score(a, b domain.Pet) (Breakdown, bool) {
	if a.Breed == "" || b.Breed == "" || a.Temperament == "" || b.Temperament == "" {
		return Breakdown{}, false
	}

	breed := 50
	if strings.EqualFold(a.Breed, b.Breed) {
		breed = 100
	}

	age := 40
	switch diff := absInt(a.Age - b.Age); {
	case diff <= 2:
		age = 100
	case diff <= 4:
		age = 70
	}

	personality := 60
	if strings.EqualFold(a.Temperament, b.Temperament) {
		personality = 100
	}

	overall := int(math.Round(float64(breed+age+personality) / 3.0))

	return Breakdown{
		BreedCompatibility:   breed,
		AgeCompatibility:     age,
		PersonalityMatch:     personality,
		OverallCompatibility: overall,
	}, true
}

// ScoreAgainst scores pet against every candidate, dropping unscorable pairs.
func ScoreAgainst(pet domain.Pet, candidates []domain.Pet) []Breakdown {
	out := make([]Breakdown, 0, len(candidates))
	for _, c := range candidates {
		if bd, ok := Score(pet, c); ok {
			out = append(out, bd)
		}
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
