package db

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		email TEXT UNIQUE,
		role TEXT,
		specialization TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		patient TEXT,
		patientEmail TEXT,
		doctor TEXT,
		date TEXT,
		time TEXT,
		reason TEXT,
		status TEXT,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		key TEXT,
		value TEXT
	)`,
}

// Init creates the three tables if absent and seeds default rows into empty
// tables. It never alters an existing schema, and re-running it against a
// populated store is a no-op.
func Init(ctx context.Context, sqlDB *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	if err := seedUsers(ctx, sqlDB); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedAppointments(ctx, sqlDB); err != nil {
		return fmt.Errorf("seed appointments: %w", err)
	}
	return nil
}

func seedUsers(ctx context.Context, sqlDB *sql.DB) error {
	var count int
	if err := sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		name, email, role, specialization string
	}{
		{"Admin User", "admin@example.com", "Admin", ""},
		{"Dr. Alice", "alice@clinic.com", "Doctor", "Cardiology"},
		{"Dr. Bob", "bob@clinic.com", "Doctor", "Dermatology"},
		{"John Patient", "john@patient.com", "Patient", ""},
	}
	for _, u := range seed {
		_, err := sqlDB.ExecContext(ctx,
			`INSERT INTO users (name, email, role, specialization) VALUES (?, ?, ?, ?)`,
			u.name, u.email, u.role, u.specialization,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAppointments(ctx context.Context, sqlDB *sql.DB) error {
	var count int
	if err := sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		patient, patientEmail, doctor, date, time, reason string
	}{
		{"John Patient", "john@patient.com", "Dr. Alice", "2026-01-10", "10:00", "Chest pain"},
		{"Jane Doe", "jane@patient.com", "Dr. Bob", "2026-01-12", "15:00", "Skin rash"},
	}
	for _, a := range seed {
		_, err := sqlDB.ExecContext(ctx,
			`INSERT INTO appointments (patient, patientEmail, doctor, date, time, reason, status, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.patient, a.patientEmail, a.doctor, a.date, a.time, a.reason, "Scheduled", "",
		)
		if err != nil {
			return err
		}
	}
	return nil
}
