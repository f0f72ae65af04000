package handlers

import "net/http"

type healthResponse struct {
	OK bool `json:"ok"`
}

// Health is store-independent; it only signals that the process is serving.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{OK: true})
}
