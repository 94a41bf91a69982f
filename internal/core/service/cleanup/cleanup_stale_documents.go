package cleanup

import (
	"context"
	"time"

	"github.com/codecraftwt/eazecap/internal/core/domain"
)

// CleanupStaleDocuments marks documents stuck in a non-terminal status beyond
// the staging TTL as failed and removes their staged objects. Unsafe files
// stay in staging for quarantine review; only their status is closed out.
func (c *cleanupService) CleanupStaleDocuments(ctx context.Context, now time.Time) error {
	docs, err := c.uow.DocumentRepo().FindStale(ctx, now.Add(-c.stagingTTL))
	if err != nil {
		return err
	}

	for _, doc := range docs {
		if err := c.uow.DocumentRepo().UpdateStatus(ctx, doc.ID, domain.DocumentStatusFailed); err != nil {
			c.logger.Error("failed to close out stale document", "document_id", doc.ID, "error", err)
			continue
		}

		if doc.StagingKey == "" || doc.Verdict == domain.ScanVerdictUnsafe {
			continue
		}
		if err := c.staging.DeleteObject(ctx, doc.StagingKey); err != nil {
			c.logger.Error("failed to delete stale staged object", "staging_key", doc.StagingKey, "error", err)
		}
	}

	c.logger.Info("stale document cleanup completed", "count", len(docs))
	return nil
}
