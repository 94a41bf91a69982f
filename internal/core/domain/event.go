package domain

// ScanResultEvent represents a scan-verdict notification published by the
// malware-scanning pipeline (GuardDuty scan result forwarded through the broker).
type ScanResultEvent struct {
	EventTime string `json:"eventTime"`
	Detail    struct {
		S3ObjectDetails struct {
			BucketName string `json:"bucketName"`
			ObjectKey  string `json:"objectKey"`
		} `json:"s3ObjectDetails"`
		ScanResultDetails struct {
			ScanResultStatus string `json:"scanResultStatus"`
		} `json:"scanResultDetails"`
	} `json:"detail"`
}

// Scan result tags used by the scanning backend.
const (
	ScanTagNoThreats = "NO_THREATS_FOUND"
	ScanTagThreats   = "THREATS_FOUND"
)

// VerdictFromScanTag maps the scanning backend's tag vocabulary onto a verdict.
// Anything that is not a terminal tag counts as still pending.
func VerdictFromScanTag(tag string) ScanVerdict {
	switch tag {
	case ScanTagNoThreats:
		return ScanVerdictSafe
	case ScanTagThreats:
		return ScanVerdictUnsafe
	default:
		return ScanVerdictPending
	}
}
