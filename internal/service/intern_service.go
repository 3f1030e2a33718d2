package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skybrisk/intern-service/internal/models"
	"github.com/skybrisk/intern-service/internal/repository"
)

type InternService interface {
	GetAllInterns(ctx context.Context) ([]models.Intern, error)
	GetInternByEmail(ctx context.Context, email string) (*models.InternProfile, error)
}

type internService struct {
	internRepo repository.InternRepository
	logger     zerolog.Logger
	now        func() time.Time
}

func NewInternService(internRepo repository.InternRepository, logger zerolog.Logger) InternService {
	return &internService{
		internRepo: internRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *internService) GetAllInterns(ctx context.Context) ([]models.Intern, error) {
	interns, err := s.internRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all interns: %w", err)
	}

	return interns, nil
}

func (s *internService) GetInternByEmail(ctx context.Context, email string) (*models.InternProfile, error) {
	intern, err := s.internRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get intern by email: %w", err)
	}
	if intern == nil {
		return nil, ErrInternNotFound
	}

	return BuildProfile(*intern, s.now()), nil
}
