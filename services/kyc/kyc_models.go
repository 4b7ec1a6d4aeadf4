package kyc

import "context"

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
	StatusFlagged  Status = "flagged"
)

type Stage string

const (
	StageCustomer Stage = "customer"
	StageBank     Stage = "bank_account"
	StageBVN      Stage = "bvn"
	StageDone     Stage = "done"
)

// Match classifications returned alongside every stage result
const (
	MatchExact   = "exact_match"
	MatchPartial = "partial_match"
	MatchNone    = "no_match"
)

// CustomerInfo is the Stage 1 submission
type CustomerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c CustomerInfo) FullName() string {
	return c.FirstName + " " + c.LastName
}

// BankAccountInfo is the Stage 2 submission. AutoDetected marks the
// account name as system-populated rather than user-entered.
type BankAccountInfo struct {
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	AccountName   string `json:"account_name"`
	AutoDetected  bool   `json:"-"`
}

// BVNInfo is the Stage 3 submission
type BVNInfo struct {
	BVN string `json:"bvn"`
}

type CustomerResult struct {
	CustomerID   string
	CustomerCode string
}

type BankAccountResult struct {
	Verified      bool
	AccountName   string
	BankName      string
	BankCode      string
	AccountNumber string
	MatchStatus   string
}

type BVNResult struct {
	Verified    bool
	FirstName   string
	LastName    string
	MiddleName  string
	Phone       string
	DateOfBirth string
	MatchStatus string
}

// BankData is the persisted Stage 2 snapshot
type BankData struct {
	BankCode      string `json:"bank_code"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Verified      bool   `json:"verified"`
	MatchStatus   string `json:"match_status"`
}

// BVNData is the persisted Stage 3 snapshot
type BVNData struct {
	BVN         string `json:"bvn"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	MiddleName  string `json:"middle_name"`
	Verified    bool   `json:"verified"`
	MatchStatus string `json:"match_status"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
}

// Metadata records where progress was last written from
type Metadata struct {
	Stage         Stage  `json:"stage"`
	VendorStoreID string `json:"vendor_store_id,omitempty"`
	CustomerID    string `json:"customer_id,omitempty"`
}

// Progress is the persisted, resumable verification state for a subject
type Progress struct {
	KYCID     string
	OwnerID   string
	Status    Status
	BankData  *BankData
	BVNData   *BVNData
	Metadata  Metadata
	Completed bool
}

// ProgressUpdate is a partial write against a subject's progress record.
// An empty KYCID signals create; a nil payload leaves the persisted
// field untouched.
type ProgressUpdate struct {
	KYCID     string
	Status    Status
	BankData  *BankData
	BVNData   *BVNData
	Metadata  Metadata
	Completed bool
}

// VerificationClient is the outbound contract to the identity/payment
// verification provider(s).
type VerificationClient interface {
	CreateCustomer(ctx context.Context, info CustomerInfo) (*CustomerResult, error)
	ResolveBankAccount(ctx context.Context, info BankAccountInfo, fullName string) (*BankAccountResult, error)
	ResolveBVN(ctx context.Context, info BVNInfo, account *BankAccountInfo, fullName string) (*BVNResult, error)
	ResolveBankFromAccountNumber(ctx context.Context, accountNumber string, bankCode string) (*BankAccountResult, error)
}

// ProgressStore persists verification progress and the denormalized
// tenant status mirror.
type ProgressStore interface {
	SaveProgress(ctx context.Context, ownerID string, update ProgressUpdate) (string, error)
	GetProgressByOwner(ctx context.Context, ownerID string) (*Progress, error)
	SetTenantKYCStatus(ctx context.Context, ownerID string, status Status) error
}

// BankDirectory is the Stage 2 validation and display source
type BankDirectory interface {
	Lookup(code string) (string, bool)
}

type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeRejected Outcome = "rejected"
	OutcomeError    Outcome = "error"
	OutcomeWarning  Outcome = "warning"
)

// Notifier receives user-facing workflow outcomes. Implementations must
// not block; the workflow treats notification as fire-and-forget.
type Notifier interface {
	Notify(ownerID string, outcome Outcome, message string)
}
