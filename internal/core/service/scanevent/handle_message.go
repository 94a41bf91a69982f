package scanevent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/codecraftwt/eazecap/internal/core/domain"
)

func (s *scanEventService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.ScanResultEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not unmarshal scan result event: %w", err)
	}

	key := event.Detail.S3ObjectDetails.ObjectKey
	if key == "" {
		return fmt.Errorf("scan result event carries no object key")
	}

	decodedKey, err := url.QueryUnescape(key)
	if err != nil {
		return err
	}

	verdict := domain.VerdictFromScanTag(event.Detail.ScanResultDetails.ScanResultStatus)
	if verdict == domain.ScanVerdictPending {
		s.logger.Info("ignoring non-terminal scan event", "key", decodedKey, "status", event.Detail.ScanResultDetails.ScanResultStatus)
		return nil
	}

	s.logger.Info("recording scan verdict", "key", decodedKey, "verdict", verdict)

	if err := s.uow.DocumentRepo().SetVerdictByStagingKey(ctx, decodedKey, verdict); err != nil {
		// A verdict is terminal once recorded; a rescan or redelivered event
		// for the same object must not flip it.
		if errors.Is(err, domain.ErrVerdictFinal) {
			s.logger.Info("ignoring scan event for already-decided document", "key", decodedKey, "verdict", verdict)
			return nil
		}
		// Verdicts may arrive for objects staged by another environment
		// sharing the bucket; redelivering those forever helps nobody.
		if errors.Is(err, domain.ErrDocumentNotFound) {
			s.logger.Warn("scan verdict for unknown staging key", "key", decodedKey)
			return nil
		}
		return err
	}
	return nil
}
