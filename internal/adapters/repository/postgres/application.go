package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/codecraftwt/eazecap/internal/core/domain"
	"github.com/codecraftwt/eazecap/internal/core/port"

	"github.com/google/uuid"
)

type sqlApplicationRepository struct {
	db SQLQuerier
}

// NewSqlApplicationRepository creates sqlApplicationRepository that implements port.ApplicationRepository
func NewSqlApplicationRepository(db SQLQuerier) port.ApplicationRepository {
	return &sqlApplicationRepository{
		db: db,
	}
}

// Create creates a new application entry
func (s *sqlApplicationRepository) Create(ctx context.Context, app domain.Application) error {
	form, err := json.Marshal(app.Form)
	if err != nil {
		return fmt.Errorf("error encoding form: %w", err)
	}

	query := `INSERT INTO applications (id, status, current_step, form)
              VALUES ($1, $2, $3, $4)`

	if _, err := s.db.ExecContext(ctx, query, app.ID, app.Status, app.CurrentStep, form); err != nil {
		return fmt.Errorf("error inserting application: %w", err)
	}
	return nil
}

// FindByID finds by id
func (s *sqlApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	query := `SELECT id, status, current_step, form, created_at, updated_at
              FROM applications
              WHERE id = $1`

	var dbApp dbApplication
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dbApp.ID,
		&dbApp.Status,
		&dbApp.CurrentStep,
		&dbApp.Form,
		&dbApp.CreatedAt,
		&dbApp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}

	return dbApp.ToDomain()
}

// UpdateForm replaces the stored form answers
func (s *sqlApplicationRepository) UpdateForm(ctx context.Context, id uuid.UUID, form domain.Form) error {
	encoded, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("error encoding form: %w", err)
	}

	query := `UPDATE applications
              SET form = $1, updated_at = now()
              WHERE id = $2`

	return s.exec(ctx, query, encoded, id)
}

// UpdateStep updates the wizard step reached
func (s *sqlApplicationRepository) UpdateStep(ctx context.Context, id uuid.UUID, step int) error {
	query := `UPDATE applications
              SET current_step = $1, updated_at = now()
              WHERE id = $2`

	return s.exec(ctx, query, step, id)
}

// UpdateStatus updates status
func (s *sqlApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	query := `UPDATE applications
              SET status = $1, updated_at = now()
              WHERE id = $2`

	return s.exec(ctx, query, status, id)
}

func (s *sqlApplicationRepository) exec(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating application: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// dbApplication represents an application in DB
type dbApplication struct {
	ID          uuid.UUID `db:"id"`
	Status      string    `db:"status"`
	CurrentStep int       `db:"current_step"`
	Form        []byte    `db:"form"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ToDomain converts to domain.Application
func (a *dbApplication) ToDomain() (*domain.Application, error) {
	var form domain.Form
	if err := json.Unmarshal(a.Form, &form); err != nil {
		return nil, fmt.Errorf("error decoding form: %w", err)
	}

	return &domain.Application{
		ID:          a.ID,
		Status:      domain.ApplicationStatus(a.Status),
		CurrentStep: a.CurrentStep,
		Form:        form,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}, nil
}
