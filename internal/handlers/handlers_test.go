package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clinicdesk/clinicd/internal/db"
	"github.com/clinicdesk/clinicd/internal/model"
	"github.com/clinicdesk/clinicd/internal/storage"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "clinic.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := db.Init(context.Background(), store); err != nil {
		t.Fatalf("init store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := http.NewServeMux()
	Register(mux,
		NewUserHandler(storage.NewUserRepository(store), logger),
		NewAppointmentHandler(storage.NewAppointmentRepository(store), logger),
		NewSettingHandler(storage.NewSettingRepository(store), logger),
	)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rw := httptest.NewRecorder()
	mux.ServeHTTP(rw, req)
	return rw
}

func decodeInto(t *testing.T, rw *httptest.ResponseRecorder, v any) {
	t.Helper()
	if ct := rw.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	if err := json.Unmarshal(rw.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rw.Body.String(), err)
	}
}

func TestListUsersSeeded(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodGet, "/api/users", "")
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	var users []model.User
	decodeInto(t, rw, &users)
	if len(users) != 4 {
		t.Fatalf("expected 4 seeded users, got %d", len(users))
	}
	if users[0].Name != "Admin User" || users[0].Role != "Admin" {
		t.Fatalf("unexpected first seed user: %+v", users[0])
	}
	if users[1].Specialization != "Cardiology" {
		t.Fatalf("expected Cardiology for Dr. Alice, got %q", users[1].Specialization)
	}
}

func TestCreateUserMissingFields(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodPost, "/api/users", `{"name":"No Role","email":"norole@x.com"}`)
	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rw.Code)
	}
	var resp map[string]string
	decodeInto(t, rw, &resp)
	if resp["error"] != "Missing fields" {
		t.Fatalf("expected Missing fields, got %q", resp["error"])
	}
}

func TestCreateUserDefaultsSpecialization(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodPost, "/api/users", `{"name":"Nurse Joy","email":"joy@clinic.com","role":"Nurse"}`)
	if rw.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rw.Code, rw.Body.String())
	}
	var user model.User
	decodeInto(t, rw, &user)
	if user.ID == 0 {
		t.Fatal("expected store-assigned id")
	}
	if user.Specialization != "" {
		t.Fatalf("expected blank specialization, got %q", user.Specialization)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	mux := newTestMux(t)

	// admin@example.com is seeded.
	rw := do(t, mux, http.MethodPost, "/api/users", `{"name":"Imposter","email":"admin@example.com","role":"Admin"}`)
	if rw.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for duplicate email, got %d", rw.Code)
	}
	var resp map[string]string
	decodeInto(t, rw, &resp)
	if resp["error"] == "" {
		t.Fatal("expected the store error message in the response")
	}
}

func TestDeleteUserUnknownID(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodDelete, "/api/users/9999", "")
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	var resp deleteUserResponse
	decodeInto(t, rw, &resp)
	if !resp.Success {
		t.Fatal("expected success=true for unknown id")
	}
}

func TestDeleteUserRemovesRow(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodDelete, "/api/users/4", "")
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	var users []model.User
	decodeInto(t, do(t, mux, http.MethodGet, "/api/users", ""), &users)
	if len(users) != 3 {
		t.Fatalf("expected 3 users after delete, got %d", len(users))
	}
}

func TestDeleteUserInvalidID(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodDelete, "/api/users/abc", "")
	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rw.Code)
	}
}

func TestCreateAppointmentForcesScheduled(t *testing.T) {
	mux := newTestMux(t)

	body := `{"patient":"Jane Doe","patientEmail":"jane@x.com","doctor":"Dr. Bob","date":"2026-02-01","time":"09:00","status":"Completed","notes":"sneaky"}`
	rw := do(t, mux, http.MethodPost, "/api/appointments", body)
	if rw.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rw.Code, rw.Body.String())
	}
	var appt model.Appointment
	decodeInto(t, rw, &appt)
	if appt.Status != "Scheduled" {
		t.Fatalf("expected forced Scheduled status, got %q", appt.Status)
	}
	if appt.Notes != "" {
		t.Fatalf("expected blank notes, got %q", appt.Notes)
	}
	if appt.Reason != "" {
		t.Fatalf("expected blank reason when omitted, got %q", appt.Reason)
	}
	if appt.ID == 0 {
		t.Fatal("expected store-assigned id")
	}

	var appts []model.Appointment
	decodeInto(t, do(t, mux, http.MethodGet, "/api/appointments", ""), &appts)
	found := false
	for _, a := range appts {
		if a.ID == appt.ID && a.Patient == "Jane Doe" {
			found = true
		}
	}
	if !found {
		t.Fatal("created appointment missing from list")
	}
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodPost, "/api/appointments", `{"patient":"Jane Doe","doctor":"Dr. Bob"}`)
	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rw.Code)
	}
	var resp map[string]string
	decodeInto(t, rw, &resp)
	if resp["error"] != "Missing fields" {
		t.Fatalf("expected Missing fields, got %q", resp["error"])
	}
}

func TestUpdateAppointmentOverwritesBothFields(t *testing.T) {
	mux := newTestMux(t)

	// Seed appointment 1 has reason "Chest pain". Omitting notes must blank
	// them, not preserve them.
	rw := do(t, mux, http.MethodPut, "/api/appointments/1", `{"status":"Completed"}`)
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rw.Code, rw.Body.String())
	}
	var appt model.Appointment
	decodeInto(t, rw, &appt)
	if appt.Status != "Completed" {
		t.Fatalf("expected Completed, got %q", appt.Status)
	}
	if appt.Notes != "" {
		t.Fatalf("expected blanked notes, got %q", appt.Notes)
	}

	// And the reverse: notes without status blanks status.
	rw = do(t, mux, http.MethodPut, "/api/appointments/1", `{"notes":"follow up in two weeks"}`)
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	decodeInto(t, rw, &appt)
	if appt.Status != "" || appt.Notes != "follow up in two weeks" {
		t.Fatalf("unexpected row after second update: %+v", appt)
	}
}

func TestUpdateAppointmentUnknownID(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodPut, "/api/appointments/424242", `{"status":"Completed"}`)
	if rw.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rw.Code)
	}
	var resp map[string]string
	decodeInto(t, rw, &resp)
	if resp["error"] != "appointment not found" {
		t.Fatalf("unexpected error message %q", resp["error"])
	}
}

func TestListSettingsEmptyReturnsArray(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodGet, "/api/settings", "")
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	if body := strings.TrimSpace(rw.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestCreateSettingMissingKey(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodPost, "/api/settings", `{"value":"dark"}`)
	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rw.Code)
	}
	var resp map[string]string
	decodeInto(t, rw, &resp)
	if resp["error"] != "Missing key" {
		t.Fatalf("expected Missing key, got %q", resp["error"])
	}
}

func TestCreateSettingAppendsDuplicateKeys(t *testing.T) {
	mux := newTestMux(t)

	for range 2 {
		rw := do(t, mux, http.MethodPost, "/api/settings", `{"key":"theme","value":"dark"}`)
		if rw.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rw.Code, rw.Body.String())
		}
	}
	var settings []model.Setting
	decodeInto(t, do(t, mux, http.MethodGet, "/api/settings", ""), &settings)
	if len(settings) != 2 {
		t.Fatalf("expected 2 rows (no de-duplication), got %d", len(settings))
	}
	if settings[0].Key != "theme" || settings[1].Key != "theme" {
		t.Fatalf("unexpected rows: %+v", settings)
	}
}

func TestCreateSettingDefaultsValue(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodPost, "/api/settings", `{"key":"clinicName"}`)
	if rw.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rw.Code)
	}
	var setting model.Setting
	decodeInto(t, rw, &setting)
	if setting.Value != "" {
		t.Fatalf("expected blank value, got %q", setting.Value)
	}
}

func TestHealth(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodGet, "/api/health", "")
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	var resp healthResponse
	decodeInto(t, rw, &resp)
	if !resp.OK {
		t.Fatal("expected ok=true")
	}
}

func TestInvalidJSONBody(t *testing.T) {
	mux := newTestMux(t)

	rw := do(t, mux, http.MethodPost, "/api/users", `{not json`)
	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rw.Code)
	}
	var resp map[string]string
	decodeInto(t, rw, &resp)
	if resp["error"] != "invalid json body" {
		t.Fatalf("unexpected error message %q", resp["error"])
	}
}
