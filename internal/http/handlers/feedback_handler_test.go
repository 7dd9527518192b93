package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/petmatch/petmatch-server/internal/domain"
	"github.com/petmatch/petmatch-server/internal/repo"
)

func TestSubmitFeedback_MissingFields(t *testing.T) {
	h := New(nil, nil, nil, &stubFeedbackService{}, nil)
	w := do(t, newTestRouter(h), http.MethodPost, "/feedback", `{"name":"Dana"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitFeedback_Created(t *testing.T) {
	h := New(nil, nil, nil, &stubFeedbackService{
		submit: func(ctx context.Context, name, email, message string) (*domain.Feedback, error) {
			return &domain.Feedback{ID: 5, Name: name, Email: email, Message: message}, nil
		},
	}, nil)

	w := do(t, newTestRouter(h), http.MethodPost, "/feedback",
		`{"name":"Dana","email":"dana@example.com","message":"nice"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "feedback submitted successfully") || !strings.Contains(body, `"id":5`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestListFeedback_Success(t *testing.T) {
	h := New(nil, nil, nil, &stubFeedbackService{
		list: func(ctx context.Context) ([]domain.Feedback, error) {
			return []domain.Feedback{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}, nil
		},
	}, nil)

	w := do(t, newTestRouter(h), http.MethodGet, "/feedback", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestGetReports_Success(t *testing.T) {
	h := New(nil, nil, nil, nil, &stubReportService{
		totals: func(ctx context.Context) (*repo.Totals, error) {
			return &repo.Totals{TotalUsers: 10, TotalPets: 14, TotalMatches: 3}, nil
		},
	})

	w := do(t, newTestRouter(h), http.MethodGet, "/reports", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"totalUsers":10`, `"totalPets":14`, `"totalMatches":3`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %s", want, body)
		}
	}
}
