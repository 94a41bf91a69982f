package salesforce

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/codecraftwt/eazecap/internal/core/domain"
)

// TransferBinary performs the final binary PUT to a one-time destination URL.
// A non-success status carries the response status and body for diagnostics.
func (a *Adapter) TransferBinary(ctx context.Context, uploadURL, contentType string, body io.Reader, size int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, body)
	if err != nil {
		return err
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: destination returned %d: %s", domain.ErrTransferFailed, resp.StatusCode, string(respBody))
	}

	return nil
}
