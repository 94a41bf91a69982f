package port

import (
	"context"
	"io"

	"github.com/codecraftwt/eazecap/internal/core/domain"
)

// CRMClient is an interface to interact with the CRM backend (token endpoint,
// document destination endpoint, data submission) and the one-time destination
// URLs it hands out.
type CRMClient interface {
	// FetchToken requests a bearer token using the fixed client identity.
	FetchToken(ctx context.Context) (string, error)
	// DocumentUploadURL requests a one-time destination descriptor for a scanned file.
	DocumentUploadURL(ctx context.Context, token, fileName, contentType string) (*domain.DocumentDestination, error)
	// TransferBinary performs the final binary PUT to a one-time destination URL.
	TransferBinary(ctx context.Context, uploadURL, contentType string, body io.Reader, size int64) error
	// SubmitApplication posts the collected form state to the CRM submission endpoint.
	SubmitApplication(ctx context.Context, token, accountID string, form domain.Form) error
}

// CredentialProvider hands out the cached bearer token, fetching it lazily on
// first need. Concurrent callers awaiting a missing token share one fetch.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
	// Invalidate drops the cached token. Nothing calls it automatically; a
	// finalize-step credential rejection does not trigger a refresh-and-retry.
	Invalidate()
}
