package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/codecraftwt/eazecap/internal/core/domain"
	"github.com/codecraftwt/eazecap/internal/core/port"

	"github.com/google/uuid"
)

const documentColumns = `id, application_id, field_id, folder, filename, content_type,
              size_bytes, staging_key, scan_verdict, final_key, status, created_at, updated_at`

type sqlDocumentRepository struct {
	db SQLQuerier
}

// NewSqlDocumentRepository creates sqlDocumentRepository that implements port.DocumentRepository
func NewSqlDocumentRepository(db SQLQuerier) port.DocumentRepository {
	return &sqlDocumentRepository{
		db: db,
	}
}

// Create creates a new document entry
func (s *sqlDocumentRepository) Create(ctx context.Context, doc domain.Document) error {
	query := `INSERT INTO documents (id, application_id, field_id, folder, filename,
              content_type, size_bytes, staging_key, scan_verdict, final_key, status)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := s.db.ExecContext(ctx, query,
		doc.ID,
		doc.ApplicationID,
		doc.FieldID,
		doc.Folder,
		doc.Filename,
		doc.ContentType,
		doc.SizeBytes,
		doc.StagingKey,
		doc.Verdict,
		doc.FinalKey,
		doc.Status,
	)
	if err != nil {
		return fmt.Errorf("error inserting document: %w", err)
	}
	return nil
}

// FindByID finds by id
func (s *sqlDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM documents WHERE id = $1`, documentColumns)

	row := s.db.QueryRowContext(ctx, query, id)
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

// ListByApplication returns all document rows belonging to an application,
// oldest first.
func (s *sqlDocumentRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]domain.Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM documents
              WHERE application_id = $1
              ORDER BY created_at ASC`, documentColumns)

	rows, err := s.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// FindLatestByField returns the newest document row for (application, field)
func (s *sqlDocumentRepository) FindLatestByField(ctx context.Context, applicationID uuid.UUID, fieldID string) (*domain.Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM documents
              WHERE application_id = $1 AND field_id = $2
              ORDER BY created_at DESC
              LIMIT 1`, documentColumns)

	row := s.db.QueryRowContext(ctx, query, applicationID, fieldID)
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

// UpdateStatus updates status
func (s *sqlDocumentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) error {
	query := `UPDATE documents
              SET status = $1, updated_at = now()
              WHERE id = $2`

	return s.exec(ctx, query, status, id)
}

// SetStagingKey records the staging object key once the staging upload succeeds
func (s *sqlDocumentRepository) SetStagingKey(ctx context.Context, id uuid.UUID, stagingKey string) error {
	query := `UPDATE documents
              SET staging_key = $1, updated_at = now()
              WHERE id = $2`

	return s.exec(ctx, query, stagingKey, id)
}

// SetVerdict records the scanner's classification
func (s *sqlDocumentRepository) SetVerdict(ctx context.Context, id uuid.UUID, verdict domain.ScanVerdict) error {
	query := `UPDATE documents
              SET scan_verdict = $1, updated_at = now()
              WHERE id = $2`

	return s.exec(ctx, query, verdict, id)
}

// SetVerdictByStagingKey records a verdict keyed by the staged object.
// Verdicts are written exactly once: a row whose verdict is already terminal
// is never overwritten and yields ErrVerdictFinal instead.
func (s *sqlDocumentRepository) SetVerdictByStagingKey(ctx context.Context, stagingKey string, verdict domain.ScanVerdict) error {
	query := `UPDATE documents
              SET scan_verdict = $1, updated_at = now()
              WHERE staging_key = $2 AND scan_verdict = $3`

	result, err := s.db.ExecContext(ctx, query, verdict, stagingKey, domain.ScanVerdictPending)
	if err != nil {
		return fmt.Errorf("error updating document: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		var exists bool
		existsQuery := `SELECT EXISTS(SELECT 1 FROM documents WHERE staging_key = $1)`
		if err := s.db.QueryRowContext(ctx, existsQuery, stagingKey).Scan(&exists); err != nil {
			return fmt.Errorf("error checking document existence: %w", err)
		}
		if exists {
			return domain.ErrVerdictFinal
		}
		return domain.ErrDocumentNotFound
	}
	return nil
}

// Complete marks a document as finished and records the CRM object key
func (s *sqlDocumentRepository) Complete(ctx context.Context, id uuid.UUID, finalKey string) error {
	query := `UPDATE documents
              SET final_key = $1, status = $2, updated_at = now()
              WHERE id = $3`

	return s.exec(ctx, query, finalKey, domain.DocumentStatusComplete, id)
}

// FindStale returns non-terminal documents not updated since the cutoff
func (s *sqlDocumentRepository) FindStale(ctx context.Context, cutoff time.Time) ([]domain.Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM documents
              WHERE status IN ($1, $2, $3) AND updated_at < $4
              ORDER BY updated_at ASC`, documentColumns)

	rows, err := s.db.QueryContext(ctx, query,
		domain.DocumentStatusStaging,
		domain.DocumentStatusScanning,
		domain.DocumentStatusFinalizing,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing stale documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

func (s *sqlDocumentRepository) exec(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating document: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var doc domain.Document
	err := row.Scan(
		&doc.ID,
		&doc.ApplicationID,
		&doc.FieldID,
		&doc.Folder,
		&doc.Filename,
		&doc.ContentType,
		&doc.SizeBytes,
		&doc.StagingKey,
		&doc.Verdict,
		&doc.FinalKey,
		&doc.Status,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
