package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type tokenRequest struct {
	InstanceURL  string `json:"instanceUrl"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// FetchToken issues the token request with the fixed client identity. Error
// wording distinguishes connectivity, 401, and 404 so the UI can surface them.
func (a *Adapter) FetchToken(ctx context.Context) (string, error) {
	payload, err := json.Marshal(tokenRequest{
		InstanceURL:  a.config.InstanceURL,
		ClientID:     a.config.ClientID,
		ClientSecret: a.config.ClientSecret,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.TokenURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("connection to CRM failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", errors.New("unauthorized: token request rejected")
	case resp.StatusCode == http.StatusNotFound:
		return "", errors.New("token endpoint not found")
	case resp.StatusCode >= http.StatusMultipleChoices:
		return "", fmt.Errorf("token request failed: %s", backendMessage(body, resp.Status))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("could not decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", errors.New("token response carries no access_token")
	}

	return token.AccessToken, nil
}
