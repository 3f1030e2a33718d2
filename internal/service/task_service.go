package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skybrisk/intern-service/internal/models"
	"github.com/skybrisk/intern-service/internal/repository"
)

var githubRepoPattern = regexp.MustCompile(`(?i)^https?://(www\.)?github\.com/[\w.-]+/[\w.-]+`)

type TaskService interface {
	GetTasksByEmail(ctx context.Context, email string) (*models.TasksResponse, error)
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
	SubmitTask(ctx context.Context, req *models.SubmitTaskRequest) (*models.Task, error)
	ApproveTask(ctx context.Context, id string, req *models.ApproveTaskRequest) (*models.ApproveTaskResponse, error)
	InitializeTasks(ctx context.Context, req *models.InitializeTasksRequest) (*models.InitializeTasksResponse, error)
	GetTaskStats(ctx context.Context, email string) (*models.TaskStats, error)
}

type taskService struct {
	taskRepo repository.TaskRepository
	logger   zerolog.Logger
}

func NewTaskService(taskRepo repository.TaskRepository, logger zerolog.Logger) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (s *taskService) GetTasksByEmail(ctx context.Context, email string) (*models.TasksResponse, error) {
	tasks, err := s.taskRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by email: %w", err)
	}

	// Неизвестный email отдаёт пустой список, а не ошибку
	if tasks == nil {
		tasks = []models.Task{}
	}

	return &models.TasksResponse{
		Tasks: tasks,
		Count: len(tasks),
	}, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

func (s *taskService) SubmitTask(ctx context.Context, req *models.SubmitTaskRequest) (*models.Task, error) {
	if !githubRepoPattern.MatchString(req.GithubRepoLink) {
		return nil, ErrInvalidRepoLink
	}

	task, err := s.taskRepo.Upsert(ctx, uuid.New().String(), req.Email, req.TaskNumber, req.GithubRepoLink)
	if err != nil {
		return nil, fmt.Errorf("failed to submit task: %w", err)
	}

	s.logger.Info().
		Str("task_id", task.TaskID).
		Str("email", task.Email).
		Int("task_number", task.TaskNumber).
		Msg("Task submitted")

	return task, nil
}

func (s *taskService) ApproveTask(ctx context.Context, id string, req *models.ApproveTaskRequest) (*models.ApproveTaskResponse, error) {
	if req.ApprovalFlag == nil || (*req.ApprovalFlag != 0 && *req.ApprovalFlag != 1) {
		return nil, ErrInvalidApprovalFlag
	}

	status := models.TaskStatusPending
	if *req.ApprovalFlag == 1 {
		status = models.TaskStatusCompleted
	}

	matched, err := s.taskRepo.UpdateReview(ctx, id, *req.ApprovalFlag, status.String(), req.ReviewedBy, req.Feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to update task review: %w", err)
	}
	if !matched {
		return nil, ErrTaskNotFound
	}

	s.logger.Info().
		Str("task_id", id).
		Int("approval_flag", *req.ApprovalFlag).
		Str("status", status.String()).
		Msg("Task reviewed")

	return &models.ApproveTaskResponse{
		TaskID:       id,
		ApprovalFlag: *req.ApprovalFlag,
		Status:       status.String(),
	}, nil
}

func (s *taskService) InitializeTasks(ctx context.Context, req *models.InitializeTasksRequest) (*models.InitializeTasksResponse, error) {
	cfg, ok := models.ConfigForDuration(req.DurationMonths)
	if !ok {
		return nil, ErrInvalidDuration
	}

	created, err := s.taskRepo.InitializeBatch(ctx, req.Email, cfg.Count, cfg.Type.String())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}
	if created == 0 {
		return nil, ErrTasksAlreadyInitialized
	}

	s.logger.Info().
		Str("email", req.Email).
		Int("duration_months", req.DurationMonths).
		Int("tasks_created", created).
		Msg("Tasks initialized")

	return &models.InitializeTasksResponse{
		Email:          req.Email,
		DurationMonths: req.DurationMonths,
		TaskCount:      cfg.Count,
		TaskType:       cfg.Type.String(),
		TasksCreated:   created,
	}, nil
}

func (s *taskService) GetTaskStats(ctx context.Context, email string) (*models.TaskStats, error) {
	stats, err := s.taskRepo.GetStats(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get task stats: %w", err)
	}

	return stats, nil
}
