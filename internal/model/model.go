// Package model holds the row types exposed through the API. The store rows
// are the wire format; there is no separate domain layer.
package model

type User struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
}

type Appointment struct {
	ID           int64  `json:"id"`
	Patient      string `json:"patient"`
	PatientEmail string `json:"patientEmail"`
	Doctor       string `json:"doctor"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Reason       string `json:"reason"`
	// Status is free text; "Scheduled" is forced on creation but any value
	// may be written through an update.
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type Setting struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}
