package upload_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/codecraftwt/eazecap/internal/core/service/upload"

	"github.com/stretchr/testify/assert"
)

func TestBuildStagingKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	tests := []struct {
		name     string
		folder   string
		filename string
		want     string
	}{
		{
			name:     "plain filename",
			folder:   "pay-stubs",
			filename: "stub.pdf",
			want:     "pay-stubs/1700000000000-stub.pdf",
		},
		{
			name:     "spaces collapse to single dash",
			folder:   "pay-stubs",
			filename: "My Pay Stub.pdf",
			want:     "pay-stubs/1700000000000-My-Pay-Stub.pdf",
		},
		{
			name:     "whitespace runs collapse",
			folder:   "identity-photos",
			filename: "drivers   license \t photo.png",
			want:     "identity-photos/1700000000000-drivers-license-photo.png",
		},
		{
			name:     "surrounding whitespace trimmed",
			folder:   "bank-statements",
			filename: "  statement.pdf  ",
			want:     "bank-statements/1700000000000-statement.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, upload.BuildStagingKey(tt.folder, tt.filename, now))
		})
	}
}

func TestBuildStagingKey_TimeOrdered(t *testing.T) {
	// Arrange
	earlier := time.UnixMilli(1700000000000)
	later := time.UnixMilli(1700000000001)

	// Act
	first := upload.BuildStagingKey("pay-stubs", "stub.pdf", earlier)
	second := upload.BuildStagingKey("pay-stubs", "stub.pdf", later)

	// Assert
	assert.NotEqual(t, first, second)
	assert.Equal(t, fmt.Sprintf("pay-stubs/%d-stub.pdf", earlier.UnixMilli()), first)
}
