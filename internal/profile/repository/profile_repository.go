package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"univadmin/internal/domain"
	apperrors "univadmin/internal/errors"
)

type MySQLProfileRepository struct {
	db *sql.DB
}

func NewMySQLProfileRepository(db *sql.DB) *MySQLProfileRepository {
	return &MySQLProfileRepository{db: db}
}

// GetAdminProfile reads the lowest-id row of admin_profile with its
// sessions.
func (r *MySQLProfileRepository) GetAdminProfile(ctx context.Context) (*domain.AdminProfile, error) {
	query := `
		SELECT id, name, email, role, phone, avatar_url, last_login, two_factor_enabled
		FROM admin_profile
		ORDER BY id
		LIMIT 1
	`

	var (
		id int64
		p  domain.AdminProfile
	)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&id, &p.Name, &p.Email, &p.Role, &p.Phone, &p.AvatarURL, &p.LastLogin, &p.TwoFactorEnabled,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("admin profile not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying admin profile: %w", err)
	}

	sessions, err := r.listSessions(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Sessions = sessions

	return &p, nil
}

func (r *MySQLProfileRepository) listSessions(ctx context.Context, profileID int64) ([]domain.AdminSession, error) {
	query := `
		SELECT id, device, location, last_active, is_current
		FROM admin_sessions
		WHERE profile_id = ?
		ORDER BY last_active DESC
	`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("querying admin sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.AdminSession{}
	for rows.Next() {
		var s domain.AdminSession
		if err := rows.Scan(&s.ID, &s.Device, &s.Location, &s.LastActive, &s.Current); err != nil {
			return nil, fmt.Errorf("scanning admin session row: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating admin session rows: %w", err)
	}

	return sessions, nil
}
