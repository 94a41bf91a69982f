package upload

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/google/uuid"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// BuildStagingKey derives the staging storage key for an upload:
// "<folder>/<unix-millis>-<sanitized-filename>", where whitespace runs in the
// filename collapse to a single dash. Keys are time-ordered by construction;
// two uploads of an identically named file in the same millisecond collide.
func BuildStagingKey(folder, filename string, now time.Time) string {
	sanitized := whitespaceRuns.ReplaceAllString(strings.TrimSpace(filename), "-")
	return fmt.Sprintf("%s/%d-%s", folder, now.UnixMilli(), sanitized)
}

// stage transfers the full file content to the staging location and records
// the computed key on the document row.
func (s *uploadService) stage(ctx context.Context, docID uuid.UUID, folder, filename, contentType string, content []byte) (string, error) {
	key := BuildStagingKey(folder, filename, time.Now())

	if err := s.staging.Upload(ctx, key, contentType, bytes.NewReader(content), int64(len(content))); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrStagingFailed, err)
	}

	if err := s.uow.DocumentRepo().SetStagingKey(ctx, docID, key); err != nil {
		return "", err
	}

	return key, nil
}
