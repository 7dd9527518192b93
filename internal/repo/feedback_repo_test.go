package repo

import (
	"context"
	"testing"
	"time"

	"github.com/petmatch/petmatch-server/internal/domain"
)

func TestCreateFeedback_PersistsRow(t *testing.T) {
	db := newTestDB(t)

	fb, err := CreateFeedback(context.Background(), db, "Dana", "dana@example.com", "great app")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if fb.ID == 0 || fb.CreatedAt.IsZero() {
		t.Fatalf("expected assigned id and timestamp: %+v", fb)
	}

	var got domain.Feedback
	if err := db.First(&got, "id = ?", fb.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "Dana" || got.Email != "dana@example.com" || got.Message != "great app" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestListFeedback_NewestFirst(t *testing.T) {
	db := newTestDB(t)

	t0 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := []domain.Feedback{
		{Name: "a", Email: "a@x", Message: "oldest", CreatedAt: t0},
		{Name: "b", Email: "b@x", Message: "newest", CreatedAt: t0.Add(2 * time.Hour)},
		{Name: "c", Email: "c@x", Message: "middle", CreatedAt: t0.Add(time.Hour)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	got, err := ListFeedback(context.Background(), db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if got[i].Message != want {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Message, want)
		}
	}
}
