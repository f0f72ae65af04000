package storage

import (
	"context"
	"database/sql"

	"github.com/clinicdesk/clinicd/internal/model"
)

// SettingRepository is append-only: there is no update or delete, and keys
// are not de-duplicated.
type SettingRepository struct {
	db *sql.DB
}

func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) List(ctx context.Context) ([]model.Setting, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, key, value
		FROM settings
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make([]model.Setting, 0)
	for rows.Next() {
		var s model.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *SettingRepository) Create(ctx context.Context, s *model.Setting) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
	`, s.Key, s.Value)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SettingRepository) GetByID(ctx context.Context, id int64) (model.Setting, error) {
	var s model.Setting
	err := r.db.QueryRowContext(ctx, `
		SELECT id, key, value FROM settings WHERE id = ?
	`, id).Scan(&s.ID, &s.Key, &s.Value)
	if err != nil {
		return model.Setting{}, err
	}
	return s, nil
}
