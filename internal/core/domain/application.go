package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus represents the status of a loan application
type ApplicationStatus string

const (
	ApplicationStatusDraft     ApplicationStatus = "draft"
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
)

// EmployeeType represents the applicant's employment situation
type EmployeeType string

const (
	EmployeeTypeW2      EmployeeType = "w2"
	EmployeeTypeSelf    EmployeeType = "self"
	EmployeeTypeRetired EmployeeType = "retired"
)

// DefaultTermMonths is the advertised loan term assumed when the applicant has
// not picked one.
const DefaultTermMonths = 60

// Application represents a loan application being filled out by an applicant
type Application struct {
	ID          uuid.UUID
	Status      ApplicationStatus
	CurrentStep int
	Form        Form
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Form holds every answer collected by the application wizard. It is stored as
// a single JSON document and submitted verbatim to the CRM backend.
type Form struct {
	// Pre-qualification
	FirstName         string       `json:"firstName"`
	LastName          string       `json:"lastName"`
	Email             string       `json:"email"`
	State             string       `json:"state"`
	BusinessAccountID string       `json:"businessAccountId"`
	LoanAmount        string       `json:"loanAmount"`
	EmployeeType      EmployeeType `json:"employeeType"`

	// Pre-qualification eligibility (W2)
	HasCheckingAccount *bool `json:"hasCheckingAccount"`
	HasValidID         *bool `json:"hasValidId"`
	HasPayStubs        *bool `json:"hasPayStubs"`
	HasReferences      *bool `json:"hasReferences"`

	// Pre-qualification eligibility (self-employed / retired)
	HasDriversLicense     *bool `json:"hasDriversLicense"`
	HasBankStatements     *bool `json:"hasBankStatements"`
	HasTaxReturns         *bool `json:"hasTaxReturns"`
	HasSeparateReferences *bool `json:"hasSeparateReferences"`

	// Step 1 - personal info
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ZipCode     string `json:"zipCode"`
	Citizenship string `json:"citizenship"`
	SSN         string `json:"ssn"`

	// Step 2 - identity verification
	IDType          string `json:"idType"`
	IDNumber        string `json:"idNumber"`
	IDState         string `json:"idState"`
	IDExpiration    string `json:"idExpiration"`
	IDAddressMatch  *bool  `json:"idAddressMatch"`
	IDPhotoKey      string `json:"idPhotoKey"`
	IDPhotoFilename string `json:"idPhotoFilename"`

	// Step 3 - employment & income (W2)
	EmployerName     string `json:"employerName"`
	JobTitle         string `json:"jobTitle"`
	PayFrequency     string `json:"payFrequency"`
	MonthlyIncome    string `json:"monthlyIncome"`
	EmploymentLength string `json:"employmentLength"`

	// Step 3 - employment & income (self-employed)
	BusinessName         string `json:"businessName"`
	BusinessType         string `json:"businessType"`
	SelfEmploymentLength string `json:"selfEmploymentLength"`

	// Step 3 - supporting documents
	PayStub1Key               string `json:"payStub1Key"`
	PayStub1Filename          string `json:"payStub1Filename"`
	PayStub2Key               string `json:"payStub2Key"`
	PayStub2Filename          string `json:"payStub2Filename"`
	PayStub3Key               string `json:"payStub3Key"`
	PayStub3Filename          string `json:"payStub3Filename"`
	PayStub4Key               string `json:"payStub4Key"`
	PayStub4Filename          string `json:"payStub4Filename"`
	TaxTranscript2023Key      string `json:"taxTranscript2023Key"`
	TaxTranscript2023Filename string `json:"taxTranscript2023Filename"`
	TaxTranscript2024Key      string `json:"taxTranscript2024Key"`
	TaxTranscript2024Filename string `json:"taxTranscript2024Filename"`
	BankStatement1Key         string `json:"bankStatement1Key"`
	BankStatement1Filename    string `json:"bankStatement1Filename"`
	BankStatement2Key         string `json:"bankStatement2Key"`
	BankStatement2Filename    string `json:"bankStatement2Filename"`

	// Step 4 - financial details
	HousingSituation      string `json:"housingSituation"`
	MonthlyHousingPayment string `json:"monthlyHousingPayment"`
	BankName              string `json:"bankName"`
	AccountType           string `json:"accountType"`
	RoutingNumber         string `json:"routingNumber"`
	AccountNumber         string `json:"accountNumber"`

	// Step 5 - references
	Reference1Name         string `json:"reference1Name"`
	Reference1Phone        string `json:"reference1Phone"`
	Reference1Relationship string `json:"reference1Relationship"`
	Reference1Address      string `json:"reference1Address"`
	Reference1City         string `json:"reference1City"`
	Reference1State        string `json:"reference1State"`
	Reference1ZipCode      string `json:"reference1ZipCode"`
	Reference2Name         string `json:"reference2Name"`
	Reference2Phone        string `json:"reference2Phone"`
	Reference2Relationship string `json:"reference2Relationship"`
	Reference2Address      string `json:"reference2Address"`
	Reference2City         string `json:"reference2City"`
	Reference2State        string `json:"reference2State"`
	Reference2ZipCode      string `json:"reference2ZipCode"`

	// Step 6 - consent
	ConsentCredit     bool `json:"consentCredit"`
	ConsentElectronic bool `json:"consentElectronic"`
	ConsentTerms      bool `json:"consentTerms"`
}

// SetDocument writes the finalized document reference into the form slot
// belonging to fieldID. Only the destination key and logical filename are
// persisted; the one-time upload URL never is.
func (f *Form) SetDocument(fieldID, finalKey, filename string) error {
	switch fieldID {
	case UploadFieldIDPhoto:
		f.IDPhotoKey, f.IDPhotoFilename = finalKey, filename
	case UploadFieldPayStub1:
		f.PayStub1Key, f.PayStub1Filename = finalKey, filename
	case UploadFieldPayStub2:
		f.PayStub2Key, f.PayStub2Filename = finalKey, filename
	case UploadFieldPayStub3:
		f.PayStub3Key, f.PayStub3Filename = finalKey, filename
	case UploadFieldPayStub4:
		f.PayStub4Key, f.PayStub4Filename = finalKey, filename
	case UploadFieldTaxTranscript2023:
		f.TaxTranscript2023Key, f.TaxTranscript2023Filename = finalKey, filename
	case UploadFieldTaxTranscript2024:
		f.TaxTranscript2024Key, f.TaxTranscript2024Filename = finalKey, filename
	case UploadFieldBankStatement1:
		f.BankStatement1Key, f.BankStatement1Filename = finalKey, filename
	case UploadFieldBankStatement2:
		f.BankStatement2Key, f.BankStatement2Filename = finalKey, filename
	default:
		return ErrUnknownUploadField
	}
	return nil
}

// DocumentRef returns the persisted {key, filename} pair for an upload field.
func (f *Form) DocumentRef(fieldID string) (key, filename string, err error) {
	switch fieldID {
	case UploadFieldIDPhoto:
		return f.IDPhotoKey, f.IDPhotoFilename, nil
	case UploadFieldPayStub1:
		return f.PayStub1Key, f.PayStub1Filename, nil
	case UploadFieldPayStub2:
		return f.PayStub2Key, f.PayStub2Filename, nil
	case UploadFieldPayStub3:
		return f.PayStub3Key, f.PayStub3Filename, nil
	case UploadFieldPayStub4:
		return f.PayStub4Key, f.PayStub4Filename, nil
	case UploadFieldTaxTranscript2023:
		return f.TaxTranscript2023Key, f.TaxTranscript2023Filename, nil
	case UploadFieldTaxTranscript2024:
		return f.TaxTranscript2024Key, f.TaxTranscript2024Filename, nil
	case UploadFieldBankStatement1:
		return f.BankStatement1Key, f.BankStatement1Filename, nil
	case UploadFieldBankStatement2:
		return f.BankStatement2Key, f.BankStatement2Filename, nil
	default:
		return "", "", ErrUnknownUploadField
	}
}
