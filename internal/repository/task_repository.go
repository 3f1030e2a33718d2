package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/skybrisk/intern-service/internal/models"
)

type TaskRepository interface {
	GetByEmail(ctx context.Context, email string) ([]models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Upsert(ctx context.Context, id, email string, taskNumber int, repoLink string) (*models.Task, error)
	UpdateReview(ctx context.Context, id string, approvalFlag int, status string, reviewedBy, feedback *string) (bool, error)
	InitializeBatch(ctx context.Context, email string, count int, taskType string) (int, error)
	GetStats(ctx context.Context, email string) (*models.TaskStats, error)
}

type taskRepository struct {
	*PostgresRepository
}

func NewTaskRepository(db *sql.DB, logger zerolog.Logger) TaskRepository {
	return &taskRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *taskRepository) GetByEmail(ctx context.Context, email string) ([]models.Task, error) {
	query := `
		SELECT task_id, email, task_number, task_type, github_repo_link, status,
			approval_flag, submission_date, approval_date, reviewed_by, feedback, created_at, updated_at
		FROM task_submissions
		WHERE email = $1
		ORDER BY task_number ASC
	`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.TaskID,
			&task.Email,
			&task.TaskNumber,
			&task.TaskType,
			&task.GithubRepoLink,
			&task.Status,
			&task.ApprovalFlag,
			&task.SubmissionDate,
			&task.ApprovalDate,
			&task.ReviewedBy,
			&task.Feedback,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := `
		SELECT task_id, email, task_number, task_type, github_repo_link, status,
			approval_flag, submission_date, approval_date, reviewed_by, feedback, created_at, updated_at
		FROM task_submissions
		WHERE task_id = $1
	`

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.TaskID,
		&task.Email,
		&task.TaskNumber,
		&task.TaskType,
		&task.GithubRepoLink,
		&task.Status,
		&task.ApprovalFlag,
		&task.SubmissionDate,
		&task.ApprovalDate,
		&task.ReviewedBy,
		&task.Feedback,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return task, err
}

// Upsert атомарно создаёт или обновляет сдачу по ключу (email, task_number).
// Повторная сдача сбрасывает статус и флаг одобрения.
func (r *taskRepository) Upsert(ctx context.Context, id, email string, taskNumber int, repoLink string) (*models.Task, error) {
	query := `
		INSERT INTO task_submissions
			(task_id, email, task_number, github_repo_link, status, approval_flag, submission_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'pending', 0, $5, $5, $5)
		ON CONFLICT (email, task_number) DO UPDATE SET
			github_repo_link = EXCLUDED.github_repo_link,
			status = 'pending',
			approval_flag = 0,
			submission_date = EXCLUDED.submission_date,
			updated_at = EXCLUDED.updated_at
		RETURNING task_id, email, task_number, task_type, github_repo_link, status,
			approval_flag, submission_date, approval_date, reviewed_by, feedback, created_at, updated_at
	`

	now := time.Now()
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, email, taskNumber, repoLink, now).Scan(
		&task.TaskID,
		&task.Email,
		&task.TaskNumber,
		&task.TaskType,
		&task.GithubRepoLink,
		&task.Status,
		&task.ApprovalFlag,
		&task.SubmissionDate,
		&task.ApprovalDate,
		&task.ReviewedBy,
		&task.Feedback,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) UpdateReview(ctx context.Context, id string, approvalFlag int, status string, reviewedBy, feedback *string) (bool, error) {
	query := `
		UPDATE task_submissions
		SET approval_flag = $1,
			status = $2,
			approval_date = $3,
			reviewed_by = $4,
			feedback = $5,
			updated_at = $3
		WHERE task_id = $6
	`

	result, err := r.db.ExecContext(ctx, query, approvalFlag, status, time.Now(), reviewedBy, feedback, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// InitializeBatch вставляет count задач одним условным запросом: если у email
// уже есть хотя бы одна строка, запрос не вставляет ничего. Возвращает число
// созданных строк; 0 означает, что задачи уже инициализированы.
func (r *taskRepository) InitializeBatch(ctx context.Context, email string, count int, taskType string) (int, error) {
	query := `
		INSERT INTO task_submissions
			(task_id, email, task_number, task_type, status, approval_flag, created_at, updated_at)
		SELECT gen_random_uuid(), $1, n, $2, 'pending', 0, NOW(), NOW()
		FROM generate_series(1, $3) AS n
		WHERE NOT EXISTS (SELECT 1 FROM task_submissions WHERE email = $1)
	`

	result, err := r.db.ExecContext(ctx, query, email, taskType, count)
	if err != nil {
		// Проигравший гонку конкурентной инициализации упирается в уникальный
		// индекс (email, task_number); для вызывающего это "уже инициализировано".
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return 0, nil
		}
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(affected), nil
}

func (r *taskRepository) GetStats(ctx context.Context, email string) (*models.TaskStats, error) {
	query := `
		SELECT
			COUNT(*) as total_tasks,
			COUNT(CASE WHEN status = 'pending' THEN 1 END) as pending_tasks,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) as completed_tasks,
			COUNT(CASE WHEN approval_flag = 1 THEN 1 END) as approved_tasks,
			COUNT(CASE WHEN approval_flag = 0 AND github_repo_link IS NOT NULL THEN 1 END) as submitted_pending_approval
		FROM task_submissions
		WHERE email = $1
	`

	stats := &models.TaskStats{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&stats.TotalTasks,
		&stats.PendingTasks,
		&stats.CompletedTasks,
		&stats.ApprovedTasks,
		&stats.SubmittedPendingApproval,
	)

	return stats, err
}
