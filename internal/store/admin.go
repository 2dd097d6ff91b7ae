// ABOUTME: Admin account store methods over SQLite
// ABOUTME: Supports signup inserts and mobile-or-email credential lookup

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateAdmin inserts a new admin account. A mobile or email collision with an
// existing account returns ErrAccountExists.
func (s *SQLiteStore) CreateAdmin(ctx context.Context, admin *AdminAccount) error {
	query := `
		INSERT INTO admins (id, name, mobile, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		admin.ID,
		admin.Name,
		admin.Mobile,
		admin.Email,
		admin.PasswordHash,
		admin.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrAccountExists
		}
		return fmt.Errorf("inserting admin: %w", err)
	}

	s.logger.Info("created admin account", "id", admin.ID, "email", admin.Email)
	return nil
}

// GetAdminByContact retrieves an admin whose mobile or email matches the given
// contact string. This backs login, where the username may be either field.
func (s *SQLiteStore) GetAdminByContact(ctx context.Context, contact string) (*AdminAccount, error) {
	query := `
		SELECT id, name, mobile, email, password_hash, created_at
		FROM admins
		WHERE mobile = ? OR email = ?
	`

	var admin AdminAccount
	var createdAtStr string

	err := s.db.QueryRowContext(ctx, query, contact, contact).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Mobile,
		&admin.Email,
		&admin.PasswordHash,
		&createdAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying admin by contact: %w", err)
	}

	admin.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &admin, nil
}

// CountAdmins returns the number of admin accounts.
func (s *SQLiteStore) CountAdmins(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting admins: %w", err)
	}
	return count, nil
}
