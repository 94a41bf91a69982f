package salesforce

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/codecraftwt/eazecap/internal/config"
)

const (
	submitPath      = "/services/apexrest/salesforce/eazecap/api/sendeazecapdata"
	documentURLPath = "/services/apexrest/salesforce/eazecap/api/documentuploadurl"
)

// Adapter is the client for the Salesforce-hosted CRM backend: the token
// endpoint, the document-destination endpoint, the data-submission endpoint,
// and the one-time destination URLs those hand out.
type Adapter struct {
	config config.CRMConfig
	http   *http.Client
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(cfg config.CRMConfig, logger *slog.Logger) *Adapter {
	return &Adapter{
		config: cfg,
		http:   &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger,
	}
}

// backendMessage pulls the backend-provided detail out of an error payload
// when present, falling back to a generic message otherwise.
func backendMessage(body []byte, fallback string) string {
	var detail struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Message != "" {
		return detail.Message
	}
	return fallback
}

func (a *Adapter) endpoint(path string) string {
	return a.config.InstanceURL + path
}
