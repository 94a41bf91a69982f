package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus represents the status of a document upload
type DocumentStatus string

const (
	DocumentStatusStaging    DocumentStatus = "staging"
	DocumentStatusScanning   DocumentStatus = "scanning"
	DocumentStatusFinalizing DocumentStatus = "finalizing"
	DocumentStatusComplete   DocumentStatus = "complete"
	DocumentStatusFailed     DocumentStatus = "failed"
)

// ScanVerdict represents the malware scanner's classification of a staged file
type ScanVerdict string

const (
	ScanVerdictPending ScanVerdict = "pending"
	ScanVerdictSafe    ScanVerdict = "safe"
	ScanVerdictUnsafe  ScanVerdict = "unsafe"
)

// Upload field identifiers exposed by the application wizard.
const (
	UploadFieldIDPhoto           = "idPhoto"
	UploadFieldPayStub1          = "payStub1"
	UploadFieldPayStub2          = "payStub2"
	UploadFieldPayStub3          = "payStub3"
	UploadFieldPayStub4          = "payStub4"
	UploadFieldTaxTranscript2023 = "taxTranscript2023"
	UploadFieldTaxTranscript2024 = "taxTranscript2024"
	UploadFieldBankStatement1    = "bankStatement1"
	UploadFieldBankStatement2    = "bankStatement2"
)

// uploadFolders maps upload fields to the staging folder namespacing their keys.
var uploadFolders = map[string]string{
	UploadFieldIDPhoto:           "identity-photos",
	UploadFieldPayStub1:          "pay-stubs",
	UploadFieldPayStub2:          "pay-stubs",
	UploadFieldPayStub3:          "pay-stubs",
	UploadFieldPayStub4:          "pay-stubs",
	UploadFieldTaxTranscript2023: "tax-returns",
	UploadFieldTaxTranscript2024: "tax-returns",
	UploadFieldBankStatement1:    "bank-statements",
	UploadFieldBankStatement2:    "bank-statements",
}

// FolderForField returns the staging folder for an upload field.
func FolderForField(fieldID string) (string, error) {
	folder, ok := uploadFolders[fieldID]
	if !ok {
		return "", ErrUnknownUploadField
	}
	return folder, nil
}

// Document represents one in-flight or completed document upload
type Document struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	FieldID       string
	Folder        string
	Filename      string
	ContentType   string
	SizeBytes     int64
	StagingKey    string
	Verdict       ScanVerdict
	FinalKey      string
	Status        DocumentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DocumentDestination is the one-time destination descriptor handed out by the
// CRM backend for a scanned file. UploadURL is single-use and never persisted.
type DocumentDestination struct {
	UploadURL string
	S3Key     string
}

// DocumentResult is the pair persisted into form state after a successful upload.
type DocumentResult struct {
	FinalKey string
	Filename string
}
