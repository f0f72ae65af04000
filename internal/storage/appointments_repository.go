package storage

import (
	"context"
	"database/sql"

	"github.com/clinicdesk/clinicd/internal/model"
)

type AppointmentRepository struct {
	db *sql.DB
}

func NewAppointmentRepository(db *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, patient, patientEmail, doctor, date, time, reason, status, notes
		FROM appointments
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := make([]model.Appointment, 0)
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.Patient, &a.PatientEmail, &a.Doctor,
			&a.Date, &a.Time, &a.Reason, &a.Status, &a.Notes,
		); err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *AppointmentRepository) Create(ctx context.Context, a *model.Appointment) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (patient, patientEmail, doctor, date, time, reason, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, a.Patient, a.PatientEmail, a.Doctor, a.Date, a.Time, a.Reason, a.Status, a.Notes)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (model.Appointment, error) {
	var a model.Appointment
	err := r.db.QueryRowContext(ctx, `
		SELECT id, patient, patientEmail, doctor, date, time, reason, status, notes
		FROM appointments
		WHERE id = ?
	`, id).Scan(
		&a.ID, &a.Patient, &a.PatientEmail, &a.Doctor,
		&a.Date, &a.Time, &a.Reason, &a.Status, &a.Notes,
	)
	if err != nil {
		return model.Appointment{}, err
	}
	return a, nil
}

// SetStatusNotes overwrites both columns unconditionally. Callers re-read the
// row to learn whether the id existed.
func (r *AppointmentRepository) SetStatusNotes(ctx context.Context, id int64, status, notes string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE appointments SET status = ?, notes = ? WHERE id = ?
	`, status, notes, id)
	return err
}
