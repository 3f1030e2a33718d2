package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skybrisk/intern-service/internal/models"
)

func newTestInternService(repo *mockInternRepo, now time.Time) InternService {
	return &internService{
		internRepo: repo,
		logger:     zerolog.Nop(),
		now:        func() time.Time { return now },
	}
}

func TestGetInternByEmail_DerivedFields(t *testing.T) {
	repo := &mockInternRepo{interns: []models.Intern{{
		InternID:  5,
		Name:      "John Smith",
		Email:     "john@example.com",
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.July, 1),
	}}}
	svc := newTestInternService(repo, date(2024, time.April, 1))

	profile, err := svc.GetInternByEmail(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("GetInternByEmail: %v", err)
	}

	if profile.DisplayID != "EMP20240101-005" {
		t.Errorf("unexpected display id: %q", profile.DisplayID)
	}
	if profile.CardType != "STANDARD" {
		t.Errorf("unexpected card type: %q", profile.CardType)
	}
	if profile.Progress < 48 || profile.Progress > 52 {
		t.Errorf("unexpected progress: %d", profile.Progress)
	}
}

func TestGetInternByEmail_NotFound(t *testing.T) {
	svc := newTestInternService(&mockInternRepo{}, time.Now())

	_, err := svc.GetInternByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrInternNotFound) {
		t.Fatalf("expected ErrInternNotFound, got %v", err)
	}
}

func TestGetAllInterns(t *testing.T) {
	repo := &mockInternRepo{interns: []models.Intern{
		{InternID: 1, Email: "a@example.com"},
		{InternID: 2, Email: "b@example.com"},
	}}
	svc := NewInternService(repo, zerolog.Nop())

	interns, err := svc.GetAllInterns(context.Background())
	if err != nil {
		t.Fatalf("GetAllInterns: %v", err)
	}
	if len(interns) != 2 {
		t.Errorf("expected 2 interns, got %d", len(interns))
	}
}
