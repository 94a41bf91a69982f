package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/codecraftwt/eazecap/internal/core/domain"
)

type documentURLRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

type documentURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	S3Key     string `json:"s3Key"`
}

// DocumentUploadURL requests the one-time destination descriptor for a
// scanned file. A credential rejection is surfaced distinctly; the caller
// decides whether to refresh (current design does not).
func (a *Adapter) DocumentUploadURL(ctx context.Context, token, fileName, contentType string) (*domain.DocumentDestination, error) {
	payload, err := json.Marshal(documentURLRequest{FileName: fileName, ContentType: contentType})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint(documentURLPath), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: requesting document destination: %w", domain.ErrTransferFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", domain.ErrAuthRejected, backendMessage(body, resp.Status))
	case resp.StatusCode >= http.StatusMultipleChoices:
		return nil, fmt.Errorf("%w: document destination request returned %d: %s", domain.ErrTransferFailed, resp.StatusCode, backendMessage(body, resp.Status))
	}

	var dest documentURLResponse
	if err := json.Unmarshal(body, &dest); err != nil {
		return nil, fmt.Errorf("could not decode document destination response: %w", err)
	}
	if dest.UploadURL == "" || dest.S3Key == "" {
		return nil, fmt.Errorf("%w: document destination response incomplete", domain.ErrTransferFailed)
	}

	return &domain.DocumentDestination{UploadURL: dest.UploadURL, S3Key: dest.S3Key}, nil
}
