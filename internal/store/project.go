// ABOUTME: Project record store methods over SQLite
// ABOUTME: Project URL is the natural key for lookup and deletion

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateProject inserts a new project record. A project URL collision returns
// ErrProjectExists.
func (s *SQLiteStore) CreateProject(ctx context.Context, project *Project) error {
	query := `
		INSERT INTO projects (id, project_name, project_url, git_link, preview_image, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		project.ID,
		project.ProjectName,
		project.ProjectURL,
		project.GitLink,
		project.PreviewImage,
		project.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrProjectExists
		}
		return fmt.Errorf("inserting project: %w", err)
	}

	s.logger.Info("created project", "id", project.ID, "url", project.ProjectURL)
	return nil
}

// GetProjectByURL retrieves a project by its URL.
func (s *SQLiteStore) GetProjectByURL(ctx context.Context, projectURL string) (*Project, error) {
	query := `
		SELECT id, project_name, project_url, git_link, preview_image, created_at
		FROM projects
		WHERE project_url = ?
	`

	var project Project
	var createdAtStr string

	err := s.db.QueryRowContext(ctx, query, projectURL).Scan(
		&project.ID,
		&project.ProjectName,
		&project.ProjectURL,
		&project.GitLink,
		&project.PreviewImage,
		&createdAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying project by url: %w", err)
	}

	project.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &project, nil
}

// DeleteProjectByURL removes the project with the given URL. Returns
// ErrProjectNotFound if no such project exists.
func (s *SQLiteStore) DeleteProjectByURL(ctx context.Context, projectURL string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE project_url = ?`, projectURL)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProjectNotFound
	}

	s.logger.Info("deleted project", "url", projectURL)
	return nil
}

// ListProjects returns all projects, newest first.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `
		SELECT id, project_name, project_url, git_link, preview_image, created_at
		FROM projects
		ORDER BY created_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []*Project
	for rows.Next() {
		var project Project
		var createdAtStr string

		if err := rows.Scan(
			&project.ID,
			&project.ProjectName,
			&project.ProjectURL,
			&project.GitLink,
			&project.PreviewImage,
			&createdAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}

		project.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	return projects, nil
}
