package credential_test

import (
	"context"
	"sync"
	"testing"

	"github.com/codecraftwt/eazecap/internal/adapters/crm"
	"github.com/codecraftwt/eazecap/internal/core/domain"
	"github.com/codecraftwt/eazecap/internal/core/service/credential"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProvider_Token_CachesFetch(t *testing.T) {
	// Arrange
	crmClient := crm.NewMockCRMClient()
	crmClient.On("FetchToken", mock.Anything).Return("token-abc", nil)
	provider := credential.NewProvider(crmClient)
	ctx := context.Background()

	// Act
	first, err1 := provider.Token(ctx)
	second, err2 := provider.Token(ctx)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, "token-abc", first)
	assert.Equal(t, "token-abc", second)
	crmClient.AssertNumberOfCalls(t, "FetchToken", 1)
}

func TestProvider_Token_FetchFailure(t *testing.T) {
	// Arrange
	crmClient := crm.NewMockCRMClient()
	crmClient.On("FetchToken", mock.Anything).Return("", assert.AnError)
	provider := credential.NewProvider(crmClient)

	// Act
	token, err := provider.Token(context.Background())

	// Assert
	require.ErrorIs(t, err, domain.ErrCredentialUnavailable)
	assert.Empty(t, token)
	// No internal retry: exactly one attempt per call.
	crmClient.AssertNumberOfCalls(t, "FetchToken", 1)
}

func TestProvider_Token_ConcurrentCallersShareFetch(t *testing.T) {
	// Arrange
	crmClient := crm.NewMockCRMClient()
	crmClient.On("FetchToken", mock.Anything).Return("token-abc", nil)
	provider := credential.NewProvider(crmClient)
	ctx := context.Background()

	// Act
	var wg sync.WaitGroup
	tokens := make([]string, 16)
	errs := make([]error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = provider.Token(ctx)
		}(i)
	}
	wg.Wait()

	// Assert
	for i := range tokens {
		require.NoError(t, errs[i])
		assert.Equal(t, "token-abc", tokens[i])
	}
	crmClient.AssertNumberOfCalls(t, "FetchToken", 1)
}

func TestProvider_Invalidate_ForcesRefetch(t *testing.T) {
	// Arrange
	crmClient := crm.NewMockCRMClient()
	crmClient.On("FetchToken", mock.Anything).Return("token-abc", nil).Once()
	crmClient.On("FetchToken", mock.Anything).Return("token-def", nil).Once()
	provider := credential.NewProvider(crmClient)
	ctx := context.Background()

	// Act
	first, _ := provider.Token(ctx)
	provider.Invalidate()
	second, err := provider.Token(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "token-abc", first)
	assert.Equal(t, "token-def", second)
	crmClient.AssertNumberOfCalls(t, "FetchToken", 2)
}
