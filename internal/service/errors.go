package service

import "errors"

// Бизнес-ошибки; обработчики транслируют их в коды ответа
var (
	ErrInternNotFound          = errors.New("user not found with this email")
	ErrTaskNotFound            = errors.New("task not found")
	ErrInvalidRepoLink         = errors.New("invalid GitHub repository URL format")
	ErrInvalidApprovalFlag     = errors.New("approval flag must be 0 (rejected) or 1 (approved)")
	ErrInvalidDuration         = errors.New("invalid duration, supported: 1, 2, 3, or 6 months")
	ErrTasksAlreadyInitialized = errors.New("tasks already initialized for this user")
)
