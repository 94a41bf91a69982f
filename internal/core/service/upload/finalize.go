package upload

import (
	"bytes"
	"context"
	"strings"

	"github.com/codecraftwt/eazecap/internal/core/domain"
)

// LogicalFilename derives the filename submitted to the CRM from a staging
// key: the last path segment, timestamp prefix included.
func LogicalFilename(stagingKey string) string {
	if idx := strings.LastIndex(stagingKey, "/"); idx != -1 {
		return stagingKey[idx+1:]
	}
	return stagingKey
}

// finalize requests a one-time destination from the CRM for the scanned file
// and performs the last-mile binary transfer. The destination URL is used
// once and discarded; only the destination key and filename are returned.
func (s *uploadService) finalize(ctx context.Context, token, stagingKey, contentType string, content []byte) (*domain.DocumentResult, error) {
	fileName := LogicalFilename(stagingKey)

	dest, err := s.crm.DocumentUploadURL(ctx, token, fileName, contentType)
	if err != nil {
		return nil, err
	}

	if err := s.crm.TransferBinary(ctx, dest.UploadURL, contentType, bytes.NewReader(content), int64(len(content))); err != nil {
		return nil, err
	}

	return &domain.DocumentResult{FinalKey: dest.S3Key, Filename: fileName}, nil
}
