package application

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/codecraftwt/eazecap/internal/core/domain"
)

// States where the lender does not fund loans.
var nonFundedStates = map[string]struct{}{
	"Montana":       {},
	"New York":      {},
	"Delaware":      {},
	"Indiana":       {},
	"Mississippi":   {},
	"California":    {},
	"Nevada":        {},
	"West Virginia": {},
	"Connecticut":   {},
	"Washington":    {},
	"Maine":         {},
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}

// validatePreQualification checks the landing questionnaire: basic identity
// fields, the eligibility answers for the declared employee type (every
// answer must be yes), and the funded-state restriction.
func validatePreQualification(form domain.Form) error {
	switch {
	case isBlank(form.FirstName):
		return validationErr("first name is required")
	case isBlank(form.LastName):
		return validationErr("last name is required")
	case isBlank(form.Email):
		return validationErr("email is required")
	case form.State == "":
		return validationErr("state is required")
	case form.LoanAmount == "":
		return validationErr("loan amount is required")
	}

	if _, ok := nonFundedStates[form.State]; ok {
		return fmt.Errorf("%w: %s", domain.ErrStateNotServiced, form.State)
	}

	switch form.EmployeeType {
	case domain.EmployeeTypeW2:
		return requireYes(map[string]*bool{
			"checking account": form.HasCheckingAccount,
			"valid ID":         form.HasValidID,
			"pay stubs":        form.HasPayStubs,
			"references":       form.HasReferences,
		})
	case domain.EmployeeTypeSelf, domain.EmployeeTypeRetired:
		// Retired applicants answer the self-employed question set.
		return requireYes(map[string]*bool{
			"checking account": form.HasCheckingAccount,
			"driver's license": form.HasDriversLicense,
			"bank statements":  form.HasBankStatements,
			"tax returns":      form.HasTaxReturns,
			"references":       form.HasSeparateReferences,
		})
	default:
		return validationErr("employee type is required")
	}
}

func requireYes(answers map[string]*bool) error {
	for label, answer := range answers {
		if answer == nil {
			return validationErr("eligibility question %q not answered", label)
		}
		if !*answer {
			return validationErr("applicant cannot provide %s", label)
		}
	}
	return nil
}

// validateStep mirrors the wizard's per-page gating.
func validateStep(step int, form domain.Form) error {
	switch step {
	case 1:
		return validatePersonalInfo(form)
	case 2:
		return validateIdentity(form)
	case 3:
		return validateEmployment(form)
	case 4:
		return validateFinancial(form)
	case 5:
		return validateReferences(form)
	case 6:
		return validateConsent(form)
	default:
		return validationErr("unknown step %d", step)
	}
}

func validatePersonalInfo(form domain.Form) error {
	switch {
	case len(digits(form.Phone)) != 10:
		return validationErr("phone must have 10 digits")
	case isBlank(form.Address):
		return validationErr("address is required")
	case isBlank(form.City):
		return validationErr("city is required")
	case form.State == "":
		return validationErr("state is required")
	case len(form.ZipCode) != 5:
		return validationErr("zip code must have 5 digits")
	case form.Citizenship == "":
		return validationErr("citizenship is required")
	case len(digits(form.SSN)) != 9:
		return validationErr("ssn must have 9 digits")
	}
	return nil
}

func validateIdentity(form domain.Form) error {
	switch {
	case form.IDType == "":
		return validationErr("id type is required")
	case isBlank(form.IDNumber):
		return validationErr("id number is required")
	case form.IDType != "passport" && form.IDState == "":
		return validationErr("issuing state is required")
	case form.IDExpiration == "":
		return validationErr("id expiration is required")
	case form.IDAddressMatch == nil:
		return validationErr("address match question not answered")
	case form.IDPhotoKey == "":
		return validationErr("id photo is required")
	}
	return nil
}

func validateEmployment(form domain.Form) error {
	switch form.EmployeeType {
	case domain.EmployeeTypeW2:
		switch {
		case isBlank(form.EmployerName):
			return validationErr("employer name is required")
		case isBlank(form.JobTitle):
			return validationErr("job title is required")
		case form.PayFrequency == "":
			return validationErr("pay frequency is required")
		case form.MonthlyIncome == "":
			return validationErr("monthly income is required")
		case form.EmploymentLength == "":
			return validationErr("employment length is required")
		}
	case domain.EmployeeTypeSelf:
		switch {
		case isBlank(form.BusinessName):
			return validationErr("business name is required")
		case isBlank(form.BusinessType):
			return validationErr("business type is required")
		case form.MonthlyIncome == "":
			return validationErr("monthly income is required")
		case form.SelfEmploymentLength == "":
			return validationErr("self-employment length is required")
		}
	case domain.EmployeeTypeRetired:
		if form.MonthlyIncome == "" {
			return validationErr("monthly income is required")
		}
	default:
		return validationErr("employee type is required")
	}
	return nil
}

func validateFinancial(form domain.Form) error {
	switch {
	case form.HousingSituation == "":
		return validationErr("housing situation is required")
	case form.MonthlyHousingPayment == "":
		return validationErr("monthly housing payment is required")
	case isBlank(form.BankName):
		return validationErr("bank name is required")
	case form.AccountType == "":
		return validationErr("account type is required")
	case len(digits(form.RoutingNumber)) != 9:
		return validationErr("routing number must have 9 digits")
	case isBlank(form.AccountNumber):
		return validationErr("account number is required")
	}
	return nil
}

func validateReferences(form domain.Form) error {
	refs := []struct {
		label                              string
		name, phone, relationship, address string
		city, state, zip                   string
	}{
		{"reference 1", form.Reference1Name, form.Reference1Phone, form.Reference1Relationship, form.Reference1Address, form.Reference1City, form.Reference1State, form.Reference1ZipCode},
		{"reference 2", form.Reference2Name, form.Reference2Phone, form.Reference2Relationship, form.Reference2Address, form.Reference2City, form.Reference2State, form.Reference2ZipCode},
	}
	for _, ref := range refs {
		switch {
		case isBlank(ref.name):
			return validationErr("%s name is required", ref.label)
		case len(digits(ref.phone)) != 10:
			return validationErr("%s phone must have 10 digits", ref.label)
		case ref.relationship == "":
			return validationErr("%s relationship is required", ref.label)
		case isBlank(ref.address):
			return validationErr("%s address is required", ref.label)
		case isBlank(ref.city):
			return validationErr("%s city is required", ref.label)
		case ref.state == "":
			return validationErr("%s state is required", ref.label)
		case len(ref.zip) != 5:
			return validationErr("%s zip code must have 5 digits", ref.label)
		}
	}
	return nil
}

func validateConsent(form domain.Form) error {
	if !form.ConsentCredit || !form.ConsentElectronic || !form.ConsentTerms {
		return validationErr("all consents must be granted")
	}
	return nil
}
