package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/clinicdesk/clinicd/internal/model"
	"github.com/clinicdesk/clinicd/internal/storage"
)

type SettingHandler struct {
	settings *storage.SettingRepository
	logger   *slog.Logger
}

func NewSettingHandler(settings *storage.SettingRepository, logger *slog.Logger) *SettingHandler {
	return &SettingHandler{settings: settings, logger: logger}
}

type createSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (h *SettingHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.List(r.Context())
	if err != nil {
		h.logger.Error("list settings failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *SettingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Key) == "" {
		writeError(w, http.StatusBadRequest, "Missing key")
		return
	}

	ctx := r.Context()
	setting := model.Setting{Key: req.Key, Value: req.Value}
	id, err := h.settings.Create(ctx, &setting)
	if err != nil {
		h.logger.Error("create setting failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	created, err := h.settings.GetByID(ctx, id)
	if err != nil {
		h.logger.Error("read back created setting failed", "err", err, "id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
