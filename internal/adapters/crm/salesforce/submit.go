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

type submitRequest struct {
	AccountID string      `json:"accountId"`
	JSONBody  domain.Form `json:"jsonbody"`
}

// SubmitApplication posts the collected form state to the CRM submission
// endpoint. Server-side failures map to a distinct "unavailable" error so the
// UI can word them apart from rejected submissions.
func (a *Adapter) SubmitApplication(ctx context.Context, token, accountID string, form domain.Form) error {
	payload, err := json.Marshal(submitRequest{AccountID: accountID, JSONBody: form})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint(submitPath), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCRMUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: submission returned %d", domain.ErrCRMUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("%w: %s", domain.ErrSubmissionRejected, backendMessage(body, resp.Status))
	}

	return nil
}
