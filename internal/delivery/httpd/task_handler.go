package httpd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skybrisk/intern-service/internal/models"
)

func (h *Handler) GetTasksByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email parameter is required")
		return
	}

	ctx := r.Context()
	response, err := h.taskService.GetTasksByEmail(ctx, email)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    response.Tasks,
		"count":   response.Count,
	})
}

func (h *Handler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")
	if taskID == "" {
		writeError(w, http.StatusBadRequest, "Task ID is required")
		return
	}

	ctx := r.Context()
	task, err := h.taskService.GetTaskByID(ctx, taskID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, task)
}

func (h *Handler) SubmitTask(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.TaskNumber <= 0 {
		writeError(w, http.StatusBadRequest, "Email and task number are required")
		return
	}

	if req.GithubRepoLink == "" {
		writeError(w, http.StatusBadRequest, "GitHub repository link is required")
		return
	}

	ctx := r.Context()
	task, err := h.taskService.SubmitTask(ctx, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccessMessage(w, "Task submitted successfully", task)
}

func (h *Handler) ApproveTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")
	if taskID == "" {
		writeError(w, http.StatusBadRequest, "Task ID is required")
		return
	}

	var req models.ApproveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ApprovalFlag == nil {
		writeError(w, http.StatusBadRequest, "Approval flag (0 or 1) is required")
		return
	}

	ctx := r.Context()
	response, err := h.taskService.ApproveTask(ctx, taskID, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	message := "Task rejected"
	if response.ApprovalFlag == 1 {
		message = "Task approved successfully"
	}

	writeSuccessMessage(w, message, response)
}

func (h *Handler) InitializeTasks(w http.ResponseWriter, r *http.Request) {
	var req models.InitializeTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.DurationMonths == 0 {
		writeError(w, http.StatusBadRequest, "Email and duration (in months) are required")
		return
	}

	ctx := r.Context()
	response, err := h.taskService.InitializeTasks(ctx, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	message := fmt.Sprintf("Successfully initialized %d tasks for %d month(s) internship",
		response.TaskCount, response.DurationMonths)

	writeSuccessMessage(w, message, response)
}

func (h *Handler) GetTaskStats(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email parameter is required")
		return
	}

	ctx := r.Context()
	stats, err := h.taskService.GetTaskStats(ctx, email)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, stats)
}
