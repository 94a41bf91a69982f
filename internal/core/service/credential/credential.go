package credential

import (
	"context"
	"fmt"
	"sync"

	"github.com/codecraftwt/eazecap/internal/core/domain"
	"github.com/codecraftwt/eazecap/internal/core/port"

	"golang.org/x/sync/singleflight"
)

type provider struct {
	crm   port.CRMClient
	group singleflight.Group

	mu    sync.RWMutex
	token string
}

// NewProvider creates a credential provider that fetches the CRM bearer token
// lazily and caches it for the lifetime of the process. Concurrent callers
// racing on a missing token share a single in-flight fetch.
func NewProvider(crm port.CRMClient) port.CredentialProvider {
	return &provider{crm: crm}
}

func (p *provider) Token(ctx context.Context) (string, error) {
	p.mu.RLock()
	cached := p.token
	p.mu.RUnlock()
	if cached != "" {
		return cached, nil
	}

	v, err, _ := p.group.Do("token", func() (interface{}, error) {
		// A waiter may have populated the cache while this call queued.
		p.mu.RLock()
		cached := p.token
		p.mu.RUnlock()
		if cached != "" {
			return cached, nil
		}

		fetched, fetchErr := p.crm.FetchToken(ctx)
		if fetchErr != nil {
			// No retry here: the caller must abort its operation.
			return nil, fmt.Errorf("%w: %w", domain.ErrCredentialUnavailable, fetchErr)
		}

		p.mu.Lock()
		p.token = fetched
		p.mu.Unlock()

		return fetched, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (p *provider) Invalidate() {
	p.mu.Lock()
	p.token = ""
	p.mu.Unlock()
}
