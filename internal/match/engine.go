package match

import (
	"strings"

	"github.com/petmatch/petmatch-server/internal/domain"
)

// Candidate is the projection of a pet surfaced inside a match list.
type Candidate struct {
	PetID        int64  `json:"pet_id"`
	Name         string `json:"name"`
	Breed        string `json:"breed"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	Food         string `json:"food"`
	HealthStatus string `json:"health_status"`
	ProfilePic   string `json:"profile_pic"`
}

// PetMatches is one row of the matchmaking result: a pet and its candidates.
type PetMatches struct {
	PetID   int64       `json:"pet_id"`
	Pet     string      `json:"pet"`
	Matches []Candidate `json:"matches"`
}

// Matches computes the match list for every pet in the input set.
//
// For a pet P the primary candidate set is every opposite-gender pet of the
// same breed (case-insensitive), excluding P. Only when that set is empty
// does P fall back to all opposite-gender pets regardless of breed. The
// fallback is strictly per-pet: one primary match is enough to suppress the
// broader set entirely.
//
// Every input pet appears in the result, with an empty (never nil) match
// list when no candidate exists in either set.
func Matches(pets []domain.Pet) []PetMatches {
	out := make([]PetMatches, 0, len(pets))
	for _, p := range pets {
		primary := make([]Candidate, 0)
		fallback := make([]Candidate, 0)
		for _, q := range pets {
			if q.ID == p.ID || q.Gender == p.Gender {
				continue
			}
			if strings.EqualFold(q.Breed, p.Breed) {
				primary = append(primary, asCandidate(q))
			} else {
				fallback = append(fallback, asCandidate(q))
			}
		}
		row := PetMatches{PetID: p.ID, Pet: p.Name, Matches: primary}
		if len(primary) == 0 {
			row.Matches = fallback
		}
		out = append(out, row)
	}
	return out
}

func asCandidate(p domain.Pet) Candidate {
	return Candidate{
		PetID:        p.ID,
		Name:         p.Name,
		Breed:        p.Breed,
		Age:          p.Age,
		Gender:       p.Gender,
		Food:         p.Food,
		HealthStatus: p.HealthStatus,
		ProfilePic:   p.ProfilePic,
	}
}
