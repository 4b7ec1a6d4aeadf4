package dojahmodels

type BVNMatchRequest struct {
	BVN           string `json:"bvn"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	AccountNumber string `json:"account_number,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
}

type BVNMatchResponse struct {
	Entity BVNMatchEntity `json:"entity"`
}

type BVNMatchEntity struct {
	BVN         EntityInfo `json:"bvn"`
	FirstName   EntityInfo `json:"first_name"`
	LastName    EntityInfo `json:"last_name"`
	MiddleName  EntityInfo `json:"middle_name"`
	PhoneNumber EntityInfo `json:"phone_number"`
	DateOfBirth EntityInfo `json:"date_of_birth"`
}

type EntityInfo struct {
	ConfidenceValue int    `json:"confidence_value"`
	Value           string `json:"value"`
	Status          bool   `json:"status"`
}

type AccountResponse struct {
	Entity AccountEntity `json:"entity"`
}

// Result of a NUBAN account lookup
type AccountEntity struct {
	BankCode      string `json:"bank_code"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}
