// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Pet model.
//
// Pets are created and managed by the profile service; this backend only
// reads them for compatibility scoring and matchmaking.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/domain"
)

// GetPet fetches a single pet by ID. If the record does not exist, it
// returns ErrNotFound. On other DB errors, the raw error is returned.
func GetPet(ctx context.Context, db *gorm.DB, id int64) (*domain.Pet, error) {
	var p domain.Pet
	if err := db.WithContext(ctx).First(&p, "pet_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPets returns every pet in the store, ordered by ID for determinism.
// The matchmaking engine operates on the full set; there is no pagination.
func ListPets(ctx context.Context, db *gorm.DB) ([]domain.Pet, error) {
	var out []domain.Pet
	err := db.WithContext(ctx).Order("pet_id ASC").Find(&out).Error
	return out, err
}

// ListPetsExcept returns all pets other than the one identified by id,
// ordered by ID. Used as the candidate pool for compatibility scoring.
func ListPetsExcept(ctx context.Context, db *gorm.DB, id int64) ([]domain.Pet, error) {
	var out []domain.Pet
	err := db.WithContext(ctx).
		Where("pet_id <> ?", id).
		Order("pet_id ASC").
		Find(&out).Error
	return out, err
}
