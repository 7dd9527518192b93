package services

import (
	"context"
	"errors"
	"testing"

	"github.com/petmatch/petmatch-server/internal/domain"
)

func seedPet(t *testing.T, svc *MatchService, p domain.Pet) domain.Pet {
	t.Helper()
	if err := svc.DB.Create(&p).Error; err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	return p
}

func TestCompatibility_PetNotFound(t *testing.T) {
	svc := &MatchService{DB: newServiceDB(t)}
	if _, err := svc.Compatibility(context.Background(), 404); !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
}

func TestCompatibility_IncompleteSourcePet(t *testing.T) {
	svc := &MatchService{DB: newServiceDB(t)}

	tests := []struct {
		name string
		pet  domain.Pet
	}{
		{"missing breed", domain.Pet{Name: "a", Age: 3, Gender: "male", Temperament: "calm"}},
		{"missing temperament", domain.Pet{Name: "b", Breed: "Beagle", Age: 3, Gender: "male"}},
		{"zero age", domain.Pet{Name: "c", Breed: "Beagle", Gender: "male", Temperament: "calm"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := seedPet(t, svc, tc.pet)
			if _, err := svc.Compatibility(context.Background(), p.ID); !errors.Is(err, ErrPetIncomplete) {
				t.Fatalf("expected ErrPetIncomplete, got %v", err)
			}
		})
	}
}

func TestCompatibility_ScoresOtherPets(t *testing.T) {
	svc := &MatchService{DB: newServiceDB(t)}
	ctx := context.Background()

	src := seedPet(t, svc, domain.Pet{Name: "Rex", Breed: "Beagle", Age: 3, Gender: "male", Temperament: "calm"})
	seedPet(t, svc, domain.Pet{Name: "Twin", Breed: "beagle", Age: 5, Gender: "female", Temperament: "Calm"})
	// Unscorable candidate, must be skipped rather than zero-filled.
	seedPet(t, svc, domain.Pet{Name: "Blank", Age: 4, Gender: "female"})

	got, err := svc.Compatibility(ctx, src.ID)
	if err != nil {
		t.Fatalf("compatibility: %v", err)
	}
	if got.Pet == nil || got.Pet.ID != src.ID {
		t.Fatalf("response must carry the source pet: %+v", got.Pet)
	}
	if len(got.Results) != 1 {
		t.Fatalf("expected 1 scored candidate, got %d", len(got.Results))
	}
	r := got.Results[0]
	if r.BreedCompatibility != 100 || r.AgeCompatibility != 100 || r.PersonalityMatch != 100 || r.OverallCompatibility != 100 {
		t.Fatalf("unexpected breakdown: %+v", r)
	}
}

func TestCompatibility_NoOtherPets(t *testing.T) {
	svc := &MatchService{DB: newServiceDB(t)}

	src := seedPet(t, svc, domain.Pet{Name: "Solo", Breed: "Beagle", Age: 2, Gender: "male", Temperament: "calm"})
	got, err := svc.Compatibility(context.Background(), src.ID)
	if err != nil {
		t.Fatalf("compatibility: %v", err)
	}
	if got.Results == nil {
		t.Fatalf("results must be an empty slice, not nil")
	}
	if len(got.Results) != 0 {
		t.Fatalf("expected no results, got %d", len(got.Results))
	}
}

func TestMatches_OneRowPerPet(t *testing.T) {
	svc := &MatchService{DB: newServiceDB(t)}
	ctx := context.Background()

	a := seedPet(t, svc, domain.Pet{Name: "A", Breed: "Beagle", Age: 2, Gender: "male", Temperament: "calm"})
	b := seedPet(t, svc, domain.Pet{Name: "B", Breed: "Beagle", Age: 3, Gender: "female", Temperament: "playful"})
	c := seedPet(t, svc, domain.Pet{Name: "C", Breed: "Poodle", Age: 4, Gender: "female", Temperament: "calm"})

	rows, err := svc.Matches(ctx)
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected one row per pet, got %d", len(rows))
	}

	byID := map[int64][]int64{}
	for _, row := range rows {
		ids := make([]int64, 0, len(row.Matches))
		for _, m := range row.Matches {
			ids = append(ids, m.PetID)
		}
		byID[row.PetID] = ids
	}
	// A's primary pool is the same-breed, opposite-gender B.
	if got := byID[a.ID]; len(got) != 1 || got[0] != b.ID {
		t.Fatalf("pet A: unexpected matches %v", got)
	}
	// C has no same-breed partner, so its row falls back to the opposite gender pool.
	if got := byID[c.ID]; len(got) != 1 || got[0] != a.ID {
		t.Fatalf("pet C: unexpected matches %v", got)
	}
}
