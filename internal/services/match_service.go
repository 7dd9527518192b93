// Package services – MatchService
//
// This file implements the MatchService, which exposes the two matchmaking
// read paths: the per-pet compatibility breakdown and the full match list.
// The service loads pet records through the repository and delegates the
// actual scoring and candidate selection to the pure functions in the match
// package, so the rules stay testable without a database.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/domain"
	"github.com/petmatch/petmatch-server/internal/match"
	"github.com/petmatch/petmatch-server/internal/repo"
)

// CompatibilityResult bundles the source pet with its scored candidates.
type CompatibilityResult struct {
	Pet     *domain.Pet       `json:"pet"`
	Results []match.Breakdown `json:"compatibilityResults"`
}

// MatchService implements the matchmaking read use-cases.
type MatchService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Compatibility scores petID against every other pet in the store.
//
// Errors:
//   - ErrPetNotFound when petID does not exist.
//   - ErrPetIncomplete when the source pet lacks breed, age, or temperament.
//     A zero age counts as missing here, matching the completeness rule the
//     mobile client relies on; candidate pets with a zero age still score.
//
// Candidate pairs that cannot be scored (missing breed or temperament) are
// dropped silently; the result list may therefore be shorter than the
// candidate pool.
func (s *MatchService) Compatibility(ctx context.Context, petID int64) (*CompatibilityResult, error) {
	pet, err := repo.GetPet(ctx, s.DB, petID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	if pet.Breed == "" || pet.Age == 0 || pet.Temperament == "" {
		return nil, ErrPetIncomplete
	}

	others, err := repo.ListPetsExcept(ctx, s.DB, petID)
	if err != nil {
		return nil, err
	}

	return &CompatibilityResult{
		Pet:     pet,
		Results: match.ScoreAgainst(*pet, others),
	}, nil
}

// Matches returns the full matchmaking table: one row per pet with its
// candidate list (primary same-breed set, per-pet fallback when empty).
func (s *MatchService) Matches(ctx context.Context) ([]match.PetMatches, error) {
	pets, err := repo.ListPets(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return match.Matches(pets), nil
}
