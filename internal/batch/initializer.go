package batch

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skybrisk/intern-service/internal/models"
	"github.com/skybrisk/intern-service/internal/repository"
)

// Initializer создаёт комплект задач для каждого стажёра, у которого их ещё нет.
// Длительность стажировки выводится из дат; для длительностей вне таблицы
// действует запасное правило durationMonths*4 еженедельных задач.
type Initializer struct {
	internRepo repository.InternRepository
	taskRepo   repository.TaskRepository
	workers    int
	logger     zerolog.Logger
}

type Summary struct {
	Total     int
	Succeeded int
	Skipped   int
	Failed    int
}

func NewInitializer(
	internRepo repository.InternRepository,
	taskRepo repository.TaskRepository,
	workers int,
	logger zerolog.Logger,
) *Initializer {
	return &Initializer{
		internRepo: internRepo,
		taskRepo:   taskRepo,
		workers:    workers,
		logger:     logger,
	}
}

func DurationMonths(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / (24 * 30)))
}

func (i *Initializer) Run(ctx context.Context) (*Summary, error) {
	interns, err := i.internRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interns: %w", err)
	}

	i.logger.Info().Int("interns", len(interns)).Msg("Starting task initialization for all interns")

	var (
		mu      sync.Mutex
		summary = Summary{Total: len(interns)}
	)

	pool := NewWorkerPool(i.workers, i.logger)
	pool.Start()

	for _, intern := range interns {
		intern := intern
		pool.Submit(func() {
			durationMonths := DurationMonths(intern.StartDate, intern.EndDate)
			cfg := models.ConfigForDurationLoose(durationMonths)

			created, err := i.taskRepo.InitializeBatch(ctx, intern.Email, cfg.Count, cfg.Type.String())
			if err != nil {
				i.logger.Error().Err(err).Str("email", intern.Email).Msg("Failed to create tasks")
				mu.Lock()
				summary.Failed++
				mu.Unlock()
				return
			}

			if created == 0 {
				i.logger.Info().Str("email", intern.Email).Msg("Skipping, tasks already exist")
				mu.Lock()
				summary.Skipped++
				mu.Unlock()
				return
			}

			i.logger.Info().
				Str("email", intern.Email).
				Int("tasks_created", created).
				Str("task_type", cfg.Type.String()).
				Int("duration_months", durationMonths).
				Msg("Tasks created")
			mu.Lock()
			summary.Succeeded++
			mu.Unlock()
		})
	}

	// Барьер: все вставки завершены до подведения итогов
	pool.Stop()

	i.logger.Info().
		Int("total", summary.Total).
		Int("success", summary.Succeeded).
		Int("skipped", summary.Skipped).
		Int("errors", summary.Failed).
		Msg("Task initialization finished")

	return &summary, nil
}
