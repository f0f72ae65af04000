package storage

import (
	"context"
	"database/sql"

	"github.com/clinicdesk/clinicd/internal/model"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, role, specialization
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Specialization); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create inserts the row and returns the store-assigned id.
func (r *UserRepository) Create(ctx context.Context, u *model.User) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (name, email, role, specialization)
		VALUES (?, ?, ?, ?)
	`, u.Name, u.Email, u.Role, u.Specialization)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, role, specialization
		FROM users
		WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Specialization)
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Delete removes the row if it exists. Deleting an unknown id is not an error.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}
