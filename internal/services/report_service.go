// Package services – ReportService
//
// Aggregate counts for the admin dashboard.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/petmatch/petmatch-server/internal/repo"
)

// ReportService implements the reports use-case.
type ReportService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Totals returns the user/pet/match counts.
func (s *ReportService) Totals(ctx context.Context) (*repo.Totals, error) {
	return repo.CountTotals(ctx, s.DB)
}
