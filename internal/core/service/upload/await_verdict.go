package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/codecraftwt/eazecap/internal/core/domain"
)

// awaitVerdict polls the scan-status source until a terminal verdict arrives
// or the attempt budget runs out. Exhausting the budget is a distinct timeout
// failure: a scan that never completes neither passes nor counts as malicious.
func (s *uploadService) awaitVerdict(ctx context.Context, stagingKey string) (domain.ScanVerdict, error) {
	for attempt := 1; attempt <= s.scanCfg.MaxAttempts; attempt++ {
		verdict, err := s.scanner.Check(ctx, stagingKey)
		if err != nil {
			return "", fmt.Errorf("scan status check: %w", err)
		}

		if verdict != domain.ScanVerdictPending {
			return verdict, nil
		}

		if attempt == s.scanCfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.scanCfg.PollInterval):
		}
	}

	return "", fmt.Errorf("%w: no verdict for %q after %d attempts", domain.ErrScanTimeout, stagingKey, s.scanCfg.MaxAttempts)
}
