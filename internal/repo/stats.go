// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the aggregate count queries behind the
// reports endpoint.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/domain"
)

// Totals carries the aggregate counts surfaced by the reports endpoint.
type Totals struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalPets    int64 `json:"totalPets"`
	TotalMatches int64 `json:"totalMatches"`
}

// CountTotals runs the three COUNT queries behind GET /reports. Each count
// is independent; a failure on any of them aborts the whole report.
func CountTotals(ctx context.Context, db *gorm.DB) (*Totals, error) {
	var t Totals
	if err := db.WithContext(ctx).Model(&domain.User{}).Count(&t.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&domain.Pet{}).Count(&t.TotalPets).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&domain.Match{}).Count(&t.TotalMatches).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
