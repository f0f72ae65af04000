package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/clinicdesk/clinicd/internal/model"
	"github.com/clinicdesk/clinicd/internal/storage"
)

type UserHandler struct {
	users  *storage.UserRepository
	logger *slog.Logger
}

func NewUserHandler(users *storage.UserRepository, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

type createUserRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
}

type deleteUserResponse struct {
	Success bool `json:"success"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.logger.Error("list users failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Role = strings.TrimSpace(req.Role)
	if req.Name == "" || req.Email == "" || req.Role == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	ctx := r.Context()
	user := model.User{
		Name:           req.Name,
		Email:          req.Email,
		Role:           req.Role,
		Specialization: req.Specialization,
	}
	id, err := h.users.Create(ctx, &user)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			h.logger.Warn("duplicate user email", "email", req.Email)
		} else {
			h.logger.Error("create user failed", "err", err)
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	created, err := h.users.GetByID(ctx, id)
	if err != nil {
		h.logger.Error("read back created user failed", "err", err, "id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Delete is idempotent: removing an id that does not exist still succeeds.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete user failed", "err", err, "id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, deleteUserResponse{Success: true})
}
