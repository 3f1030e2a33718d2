package httpd

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/skybrisk/intern-service/internal/service"
)

type Handler struct {
	internService service.InternService
	taskService   service.TaskService
	logger        zerolog.Logger
}

func NewHandler(
	internService service.InternService,
	taskService service.TaskService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		internService: internService,
		taskService:   taskService,
		logger:        logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.Liveness)
	router.Get("/health", h.HealthCheck)

	router.Route("/api", func(api chi.Router) {
		api.Route("/users", func(r chi.Router) {
			r.Get("/", h.GetAllUsers)
			r.Get("/email/{email}", h.GetUserByEmail)
		})

		api.Route("/tasks", func(r chi.Router) {
			r.Get("/email/{email}", h.GetTasksByEmail)
			r.Get("/stats/{email}", h.GetTaskStats)
			r.Get("/{taskID}", h.GetTaskByID)
			r.Post("/submit", h.SubmitTask)
			r.Post("/initialize", h.InitializeTasks)
			r.Put("/approve/{taskID}", h.ApproveTask)
		})
	})
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Skybrisk Intern Service API Running"))
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "intern-service",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
}

// handleServiceError транслирует бизнес-ошибки в коды ответа; ошибки хранилища
// логируются и наружу уходят обезличенными.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInternNotFound),
		errors.Is(err, service.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidRepoLink),
		errors.Is(err, service.ErrInvalidApprovalFlag),
		errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrTasksAlreadyInitialized):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	response := map[string]interface{}{
		"success": true,
		"data":    data,
	}
	writeJSON(w, http.StatusOK, response)
}

func writeSuccessMessage(w http.ResponseWriter, message string, data interface{}) {
	response := map[string]interface{}{
		"success": true,
		"message": message,
		"data":    data,
	}
	writeJSON(w, http.StatusOK, response)
}
