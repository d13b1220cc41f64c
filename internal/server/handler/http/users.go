package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
)

// defaultPerPage bounds a list request that names no page size.
const defaultPerPage = 6

// UserService defines the directory operations required by the HTTP
// handlers.
type UserService interface {
	List(ctx context.Context, limit int) ([]models.User, error)
	Create(ctx context.Context, draft models.User) (models.User, error)
	Update(ctx context.Context, id string, patch models.User) (models.User, error)
	Delete(ctx context.Context, id string) error
}

// UsersHandler handles the user CRUD endpoints.
type UsersHandler struct {
	UserService UserService
}

// List handles GET /api/users?per_page=n requests and responds with
// {"data": [...]}.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	perPage := defaultPerPage
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid per_page")
			return
		}
		perPage = n
	}

	users, err := h.UserService.List(r.Context(), perPage)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": users})
}

// Create handles POST /api/users requests. The body is a partial user
// record; the created record is echoed back with its assigned id.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.User
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if draft.Email == "" {
		writeError(w, http.StatusBadRequest, "missing email")
		return
	}

	created, err := h.UserService.Create(r.Context(), draft)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/users/{id} requests and echoes the updated
// record.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.User
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.UserService.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/users/{id} requests. Success is signaled
// by the status code alone.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
