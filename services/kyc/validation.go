package kyc

import "strings"

const (
	minAccountNumberLen = 10
	maxAccountNumberLen = 12
	bvnLen              = 11
)

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidAccountNumber reports whether s is 10-12 characters, digits only
func ValidAccountNumber(s string) bool {
	return len(s) >= minAccountNumberLen && len(s) <= maxAccountNumberLen && allDigits(s)
}

// ValidBVN reports whether s is exactly 11 digits
func ValidBVN(s string) bool {
	return len(s) == bvnLen && allDigits(s)
}

// Guard for Stage 1: presence only, format is delegated to the provider
func validateCustomerInfo(info CustomerInfo) error {
	switch {
	case strings.TrimSpace(info.FirstName) == "":
		return NewValidationError("first_name", "must not be empty")
	case strings.TrimSpace(info.LastName) == "":
		return NewValidationError("last_name", "must not be empty")
	case strings.TrimSpace(info.Email) == "":
		return NewValidationError("email", "must not be empty")
	case strings.TrimSpace(info.Phone) == "":
		return NewValidationError("phone", "must not be empty")
	}
	return nil
}

// Guard for Stage 2. The account name may be blank only when the system
// populated it through auto-detection.
func validateBankAccountInfo(info BankAccountInfo, banks BankDirectory) error {
	if !ValidAccountNumber(info.AccountNumber) {
		return NewValidationError("account_number", "must be 10 to 12 digits")
	}
	if banks != nil {
		if _, ok := banks.Lookup(info.BankCode); !ok {
			return NewValidationError("bank_code", "unknown bank code")
		}
	} else if strings.TrimSpace(info.BankCode) == "" {
		return NewValidationError("bank_code", "must not be empty")
	}
	if !info.AutoDetected && strings.TrimSpace(info.AccountName) == "" {
		return NewValidationError("account_name", "must not be empty")
	}
	return nil
}

// Guard for Stage 3
func validateBVNInfo(info BVNInfo) error {
	if !ValidBVN(info.BVN) {
		return NewValidationError("bvn", "must be exactly 11 digits")
	}
	return nil
}
