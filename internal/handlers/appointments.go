package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/clinicdesk/clinicd/internal/model"
	"github.com/clinicdesk/clinicd/internal/storage"
)

// initialStatus is forced on every created appointment, regardless of any
// status the caller supplies.
const initialStatus = "Scheduled"

type AppointmentHandler struct {
	appts  *storage.AppointmentRepository
	logger *slog.Logger
}

func NewAppointmentHandler(appts *storage.AppointmentRepository, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{appts: appts, logger: logger}
}

type createAppointmentRequest struct {
	Patient      string `json:"patient"`
	PatientEmail string `json:"patientEmail"`
	Doctor       string `json:"doctor"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Reason       string `json:"reason"`
}

type updateAppointmentRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appts, err := h.appts.List(r.Context())
	if err != nil {
		h.logger.Error("list appointments failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, appts)
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	req.Patient = strings.TrimSpace(req.Patient)
	req.PatientEmail = strings.TrimSpace(req.PatientEmail)
	req.Doctor = strings.TrimSpace(req.Doctor)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	if req.Patient == "" || req.PatientEmail == "" || req.Doctor == "" || req.Date == "" || req.Time == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	ctx := r.Context()
	appt := model.Appointment{
		Patient:      req.Patient,
		PatientEmail: req.PatientEmail,
		Doctor:       req.Doctor,
		Date:         req.Date,
		Time:         req.Time,
		Reason:       req.Reason,
		Status:       initialStatus,
		Notes:        "",
	}
	id, err := h.appts.Create(ctx, &appt)
	if err != nil {
		h.logger.Error("create appointment failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	created, err := h.appts.GetByID(ctx, id)
	if err != nil {
		h.logger.Error("read back created appointment failed", "err", err, "id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update overwrites status and notes with the request values; a field absent
// from the body is written as an empty string, not preserved.
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	ctx := r.Context()
	if err := h.appts.SetStatusNotes(ctx, id, req.Status, req.Notes); err != nil {
		h.logger.Error("update appointment failed", "err", err, "id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	updated, err := h.appts.GetByID(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "appointment not found")
			return
		}
		h.logger.Error("read back updated appointment failed", "err", err, "id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
