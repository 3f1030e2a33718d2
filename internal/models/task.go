package models

import (
	"time"
)

type Task struct {
	TaskID         string     `json:"task_id" db:"task_id"`
	Email          string     `json:"email" db:"email"`
	TaskNumber     int        `json:"task_number" db:"task_number"`
	TaskType       string     `json:"task_type" db:"task_type"` // weekly, monthly
	GithubRepoLink *string    `json:"github_repo_link" db:"github_repo_link"`
	Status         string     `json:"status" db:"status"` // pending, completed
	ApprovalFlag   int        `json:"approval_flag" db:"approval_flag"`
	SubmissionDate *time.Time `json:"submission_date" db:"submission_date"`
	ApprovalDate   *time.Time `json:"approval_date" db:"approval_date"`
	ReviewedBy     *string    `json:"reviewed_by" db:"reviewed_by"`
	Feedback       *string    `json:"feedback" db:"feedback"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

type TaskStats struct {
	TotalTasks               int `json:"total_tasks" db:"total_tasks"`
	PendingTasks             int `json:"pending_tasks" db:"pending_tasks"`
	CompletedTasks           int `json:"completed_tasks" db:"completed_tasks"`
	ApprovedTasks            int `json:"approved_tasks" db:"approved_tasks"`
	SubmittedPendingApproval int `json:"submitted_pending_approval" db:"submitted_pending_approval"`
}

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

func (ts TaskStatus) String() string {
	return string(ts)
}

type TaskType string

const (
	TaskTypeWeekly  TaskType = "weekly"
	TaskTypeMonthly TaskType = "monthly"
)

func (tt TaskType) String() string {
	return string(tt)
}

// TaskConfig задаёт количество и тип задач для длительности стажировки
type TaskConfig struct {
	Count int
	Type  TaskType
}

var durationConfigs = map[int]TaskConfig{
	1: {Count: 4, Type: TaskTypeWeekly},
	2: {Count: 8, Type: TaskTypeWeekly},
	3: {Count: 9, Type: TaskTypeMonthly},
	6: {Count: 36, Type: TaskTypeMonthly},
}

func ConfigForDuration(durationMonths int) (TaskConfig, bool) {
	cfg, ok := durationConfigs[durationMonths]
	return cfg, ok
}

// ConfigForDurationLoose используется пакетной инициализацией: для длительностей
// вне таблицы возвращает durationMonths*4 еженедельных задач.
func ConfigForDurationLoose(durationMonths int) TaskConfig {
	if cfg, ok := durationConfigs[durationMonths]; ok {
		return cfg
	}
	return TaskConfig{Count: durationMonths * 4, Type: TaskTypeWeekly}
}
