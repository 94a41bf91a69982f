package port

import (
	"context"
	"io"

	"github.com/codecraftwt/eazecap/internal/core/domain"
)

// StagingStorage is an interface to interact with the temporary pre-scan
// object storage.
type StagingStorage interface {
	// Upload transfers the full file content to the staging location under key.
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	// DeleteObject removes a staged object.
	DeleteObject(ctx context.Context, key string) error
}

// ScanStatusSource queries the malware scanner for the verdict on a staged file.
type ScanStatusSource interface {
	// Check returns the current verdict for a staging key. A scan still in
	// progress reports domain.ScanVerdictPending.
	Check(ctx context.Context, stagingKey string) (domain.ScanVerdict, error)
}
