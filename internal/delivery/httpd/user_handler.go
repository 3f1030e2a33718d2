package httpd

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	interns, err := h.internService.GetAllInterns(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, interns)
}

func (h *Handler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email parameter is required")
		return
	}

	ctx := r.Context()
	profile, err := h.internService.GetInternByEmail(ctx, email)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, profile)
}
