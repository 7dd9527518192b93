package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/petmatch/petmatch-server/internal/domain"
)

func TestGetPet_NotFound(t *testing.T) {
	db := newTestDB(t)
	if _, err := GetPet(context.Background(), db, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetPet_ByID(t *testing.T) {
	db := newTestDB(t)
	p := domain.Pet{Name: "Rex", Breed: "Beagle", Age: 3, Gender: "male", Temperament: "calm"}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := GetPet(context.Background(), db, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Rex" || got.Breed != "Beagle" {
		t.Fatalf("unexpected pet: %+v", got)
	}
}

func TestListPets_OrderedByID(t *testing.T) {
	db := newTestDB(t)
	for _, name := range []string{"a", "b", "c"} {
		if err := db.Create(&domain.Pet{Name: name, Gender: "male"}).Error; err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	got, err := ListPets(context.Background(), db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 pets, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].ID <= got[i-1].ID {
			t.Fatalf("list must be ordered by id")
		}
	}
}

func TestListPetsExcept_ExcludesSource(t *testing.T) {
	db := newTestDB(t)
	var ids []int64
	for _, name := range []string{"a", "b", "c"} {
		p := domain.Pet{Name: name, Gender: "male"}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
		ids = append(ids, p.ID)
	}

	got, err := ListPetsExcept(context.Background(), db, ids[1])
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 pets, got %d", len(got))
	}
	for _, p := range got {
		if p.ID == ids[1] {
			t.Fatalf("source pet must be excluded")
		}
	}
}
