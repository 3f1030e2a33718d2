package models

// Data Transfer Objects

type SubmitTaskRequest struct {
	Email          string `json:"email"`
	TaskNumber     int    `json:"taskNumber"`
	GithubRepoLink string `json:"githubRepoLink"`
}

type ApproveTaskRequest struct {
	ApprovalFlag *int    `json:"approvalFlag"` // указатель, чтобы отличать 0 от отсутствующего поля
	Feedback     *string `json:"feedback"`
	ReviewedBy   *string `json:"reviewedBy"`
}

type ApproveTaskResponse struct {
	TaskID       string `json:"task_id"`
	ApprovalFlag int    `json:"approval_flag"`
	Status       string `json:"status"`
}

type InitializeTasksRequest struct {
	Email          string `json:"email"`
	DurationMonths int    `json:"durationMonths"`
}

type InitializeTasksResponse struct {
	Email          string `json:"email"`
	DurationMonths int    `json:"duration_months"`
	TaskCount      int    `json:"task_count"`
	TaskType       string `json:"task_type"`
	TasksCreated   int    `json:"tasks_created"`
}

type TasksResponse struct {
	Tasks []Task `json:"tasks"`
	Count int    `json:"count"`
}
