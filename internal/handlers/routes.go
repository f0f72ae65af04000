package handlers

import "net/http"

// Register wires the API routes onto the mux. Patterns carry the method so
// handlers never re-check it.
func Register(mux *http.ServeMux, users *UserHandler, appts *AppointmentHandler, settings *SettingHandler) {
	mux.HandleFunc("GET /api/users", users.List)
	mux.HandleFunc("POST /api/users", users.Create)
	mux.HandleFunc("DELETE /api/users/{id}", users.Delete)

	mux.HandleFunc("GET /api/appointments", appts.List)
	mux.HandleFunc("POST /api/appointments", appts.Create)
	mux.HandleFunc("PUT /api/appointments/{id}", appts.Update)

	mux.HandleFunc("GET /api/settings", settings.List)
	mux.HandleFunc("POST /api/settings", settings.Create)

	mux.HandleFunc("GET /api/health", Health)
}
