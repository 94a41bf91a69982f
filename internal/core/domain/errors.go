package domain

import "errors"

// ErrCredentialUnavailable is an error thrown when the CRM token cannot be obtained
var ErrCredentialUnavailable = errors.New("credential unavailable")

// ErrStagingFailed is an error thrown when the staging transfer fails
var ErrStagingFailed = errors.New("staging upload failed")

// ErrScanTimeout is an error thrown when no scan verdict arrives within the attempt budget
var ErrScanTimeout = errors.New("scan verdict timed out")

// ErrUnsafeFile is an error thrown when the scan flags a file as a threat
var ErrUnsafeFile = errors.New("file flagged as unsafe")

// ErrAuthRejected is an error thrown when the CRM rejects the bearer credential
var ErrAuthRejected = errors.New("credential rejected")

// ErrTransferFailed is an error thrown when the final binary transfer is rejected
var ErrTransferFailed = errors.New("final transfer failed")

// ErrVerdictFinal is an error thrown when a verdict write targets a document
// whose verdict is already terminal
var ErrVerdictFinal = errors.New("verdict already recorded")

// ErrApplicationNotFound is an error thrown when an application is not found
var ErrApplicationNotFound = errors.New("application not found")

// ErrDocumentNotFound is an error thrown when a document is not found
var ErrDocumentNotFound = errors.New("document not found")

// ErrUnknownUploadField is an error thrown when a field id has no upload slot
var ErrUnknownUploadField = errors.New("unknown upload field")

// ErrValidation is an error thrown when form answers fail step validation
var ErrValidation = errors.New("validation failed")

// ErrStateNotServiced is an error thrown when the applicant's state is not funded
var ErrStateNotServiced = errors.New("state not serviced")

// ErrCRMUnavailable is an error thrown when the CRM backend returns a server error
var ErrCRMUnavailable = errors.New("crm unavailable")

// ErrSubmissionRejected is an error thrown when the CRM rejects a submission
var ErrSubmissionRejected = errors.New("submission rejected")

// ErrAlreadySubmitted is an error thrown when an application was already submitted
var ErrAlreadySubmitted = errors.New("already submitted")
