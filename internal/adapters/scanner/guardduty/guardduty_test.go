package guardduty_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codecraftwt/eazecap/internal/adapters/scanner/guardduty"
	"github.com/codecraftwt/eazecap/internal/config"
	"github.com/codecraftwt/eazecap/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScanner(baseURL string) *guardduty.Adapter {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return guardduty.NewAdapter(config.ScannerConfig{
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
	}, logger)
}

func TestCheck(t *testing.T) {
	t.Run("No Threats Is Safe", func(t *testing.T) {
		// Arrange
		var gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.URL.Query().Get("key")
			w.Write([]byte(`{"status":"NO_THREATS_FOUND"}`))
		}))
		defer server.Close()
		scanner := newScanner(server.URL)

		// Act
		verdict, err := scanner.Check(context.Background(), "pay-stubs/1700000000000-My Stub.pdf")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, domain.ScanVerdictSafe, verdict)
		assert.Equal(t, "pay-stubs/1700000000000-My Stub.pdf", gotKey)
	})

	t.Run("Threats Is Unsafe", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"THREATS_FOUND"}`))
		}))
		defer server.Close()
		scanner := newScanner(server.URL)

		// Act
		verdict, err := scanner.Check(context.Background(), "key")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, domain.ScanVerdictUnsafe, verdict)
	})

	t.Run("Unknown Tag Is Pending", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"SCANNING"}`))
		}))
		defer server.Close()
		scanner := newScanner(server.URL)

		// Act
		verdict, err := scanner.Check(context.Background(), "key")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, domain.ScanVerdictPending, verdict)
	})

	t.Run("Unregistered Object Is Pending", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()
		scanner := newScanner(server.URL)

		// Act
		verdict, err := scanner.Check(context.Background(), "key")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, domain.ScanVerdictPending, verdict)
	})

	t.Run("Backend Failure", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		scanner := newScanner(server.URL)

		// Act
		_, err := scanner.Check(context.Background(), "key")

		// Assert
		require.Error(t, err)
	})
}
