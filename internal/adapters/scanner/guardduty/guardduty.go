package guardduty

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/codecraftwt/eazecap/internal/config"
	"github.com/codecraftwt/eazecap/internal/core/domain"
)

// Adapter queries the scan-status endpoint fronting the GuardDuty malware
// pipeline and maps its tag vocabulary onto the three verdict states.
type Adapter struct {
	config config.ScannerConfig
	http   *http.Client
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(cfg config.ScannerConfig, logger *slog.Logger) *Adapter {
	return &Adapter{
		config: cfg,
		http:   &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger,
	}
}

type scanStatusResponse struct {
	Status string `json:"status"`
}

// Check returns the scanner's current classification of a staged object.
// An object the scanner has not registered yet counts as pending.
func (a *Adapter) Check(ctx context.Context, stagingKey string) (domain.ScanVerdict, error) {
	endpoint := fmt.Sprintf("%s/scan-status?key=%s", a.config.BaseURL, url.QueryEscape(stagingKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("scan status request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ScanVerdictPending, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("scan status endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var status scanStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", fmt.Errorf("could not decode scan status response: %w", err)
	}

	return domain.VerdictFromScanTag(status.Status), nil
}
