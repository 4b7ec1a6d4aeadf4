package kyc

import (
	"context"
	"fmt"
	"strings"

	"github.com/MartPlace/MartPlace-Backend/services/monitoring/logging"
)

// Session is the in-memory verification state for one subject. It is
// driven serially by a single caller; the workflow never touches a
// session from more than one goroutine.
type Session struct {
	OwnerID    string
	StoreID    string
	CustomerID string
	KYCID      string
	Stage      Stage
	Status     Status
	Customer   *CustomerInfo
	Bank       *BankData
	BVN        *BVNData

	// last attempted submission, for RetryStage. Stages only advance on
	// success, so the attempted stage can differ from Stage.
	lastStage    Stage
	lastCustomer *CustomerInfo
	lastBank     *BankAccountInfo
	lastBVN      *BVNInfo
}

func NewSession(ownerID string, storeID string) *Session {
	return &Session{
		OwnerID: ownerID,
		StoreID: storeID,
		Stage:   StageCustomer,
		Status:  StatusPending,
	}
}

// FullName returns the subject's display name, falling back to the
// resolved account name for resumed sessions without customer info.
func (s *Session) FullName() string {
	if s.Customer != nil {
		return s.Customer.FullName()
	}
	if s.Bank != nil {
		return s.Bank.AccountName
	}
	return ""
}

type Workflow struct {
	client   VerificationClient
	store    ProgressStore
	banks    BankDirectory
	notifier Notifier
	logger   *logging.Logger
}

func NewWorkflow(client VerificationClient, store ProgressStore, banks BankDirectory, notifier Notifier, logger *logging.Logger) *Workflow {
	return &Workflow{
		client:   client,
		store:    store,
		banks:    banks,
		notifier: notifier,
		logger:   logger,
	}
}

func (w *Workflow) notify(ownerID string, outcome Outcome, message string) {
	if w.notifier != nil {
		w.notifier.Notify(ownerID, outcome, message)
	}
}

// guard against re-running a session an admin has already closed out
func (w *Workflow) checkOpen(s *Session) error {
	if s == nil {
		return ErrSessionRequired
	}
	switch s.Status {
	case StatusRejected, StatusFlagged:
		return ErrUnderReview
	case StatusVerified:
		return ErrAlreadyVerified
	}
	return nil
}

// SubmitCustomerInfo runs Stage 1: create the remote customer record and
// capture its id. No progress is persisted at this stage.
func (w *Workflow) SubmitCustomerInfo(ctx context.Context, s *Session, info CustomerInfo) error {
	if err := w.checkOpen(s); err != nil {
		return err
	}
	if err := validateCustomerInfo(info); err != nil {
		return err
	}
	s.lastStage = StageCustomer
	s.lastCustomer = &info

	result, err := w.client.CreateCustomer(ctx, info)
	if err != nil {
		w.notify(s.OwnerID, OutcomeError, "could not create customer record, please try again")
		return NewProviderError(StageCustomer, err)
	}

	s.Customer = &info
	s.CustomerID = result.CustomerID
	s.Stage = StageBank
	w.notify(s.OwnerID, OutcomeSuccess, "customer information submitted")
	return nil
}

// SubmitBankAccount runs Stage 2: resolve the account with the provider
// and, when it verifies, persist the first progress snapshot.
func (w *Workflow) SubmitBankAccount(ctx context.Context, s *Session, info BankAccountInfo) error {
	if err := w.checkOpen(s); err != nil {
		return err
	}
	if err := validateBankAccountInfo(info, w.banks); err != nil {
		return err
	}
	s.lastStage = StageBank
	s.lastBank = &info

	result, err := w.client.ResolveBankAccount(ctx, info, s.FullName())
	if err != nil {
		w.notify(s.OwnerID, OutcomeError, "bank account resolution failed, please try again")
		return NewProviderError(StageBank, err)
	}

	if !result.Verified {
		w.notify(s.OwnerID, OutcomeRejected, "bank account verification not successful")
		return NewVerificationRejected(StageBank, result.MatchStatus)
	}

	bankName := result.BankName
	if bankName == "" && w.banks != nil {
		if name, ok := w.banks.Lookup(info.BankCode); ok {
			bankName = name
		}
	}

	accountName := result.AccountName
	if accountName == "" {
		accountName = info.AccountName
	}

	bank := &BankData{
		BankCode:      info.BankCode,
		BankName:      bankName,
		AccountNumber: info.AccountNumber,
		AccountName:   accountName,
		Verified:      true,
		MatchStatus:   result.MatchStatus,
	}

	kycID, err := w.store.SaveProgress(ctx, s.OwnerID, ProgressUpdate{
		KYCID:    s.KYCID,
		Status:   StatusPending,
		BankData: bank,
		Metadata: Metadata{
			Stage:         StageBank,
			VendorStoreID: s.StoreID,
			CustomerID:    s.CustomerID,
		},
	})

	// Verification itself succeeded; a failed write must not throw the
	// subject back to re-verifying, but a resumed session may be stale.
	s.Bank = bank
	s.Stage = StageBVN
	if err != nil {
		w.logger.Error(fmt.Sprintf("failed to persist bank verification for %v: %v", s.OwnerID, err))
		w.notify(s.OwnerID, OutcomeWarning, "bank account verified, but saving progress failed")
		return NewPersistenceError(err)
	}

	s.KYCID = kycID
	w.notify(s.OwnerID, OutcomeSuccess, "bank account verified")
	return nil
}

// SubmitBVN runs Stage 3: resolve the BVN, persist the terminal snapshot
// and flip the tenant's coarse-grained status mirror.
func (w *Workflow) SubmitBVN(ctx context.Context, s *Session, info BVNInfo) error {
	if err := w.checkOpen(s); err != nil {
		return err
	}
	if err := validateBVNInfo(info); err != nil {
		return err
	}
	// Strict stage ordering: never reach the BVN provider without a
	// verified bank account on record.
	if s.Bank == nil {
		return NewValidationError("stage", "bank account verification must be completed first")
	}
	s.lastStage = StageBVN
	s.lastBVN = &info

	account := &BankAccountInfo{
		AccountNumber: s.Bank.AccountNumber,
		BankCode:      s.Bank.BankCode,
		AccountName:   s.Bank.AccountName,
	}

	result, err := w.client.ResolveBVN(ctx, info, account, s.FullName())
	if err != nil {
		w.notify(s.OwnerID, OutcomeError, "bvn resolution failed, please try again")
		return NewProviderError(StageBVN, err)
	}

	if !result.Verified {
		w.notify(s.OwnerID, OutcomeRejected, "bvn verification not successful")
		return NewVerificationRejected(StageBVN, result.MatchStatus)
	}

	bvn := &BVNData{
		BVN:         info.BVN,
		FirstName:   result.FirstName,
		LastName:    result.LastName,
		MiddleName:  result.MiddleName,
		Verified:    true,
		MatchStatus: result.MatchStatus,
		Phone:       result.Phone,
		DateOfBirth: result.DateOfBirth,
	}

	kycID, err := w.store.SaveProgress(ctx, s.OwnerID, ProgressUpdate{
		KYCID:     s.KYCID,
		Status:    StatusVerified,
		BankData:  s.Bank,
		BVNData:   bvn,
		Completed: true,
		Metadata: Metadata{
			Stage:         StageBVN,
			VendorStoreID: s.StoreID,
			CustomerID:    s.CustomerID,
		},
	})

	s.BVN = bvn
	s.Stage = StageDone
	s.Status = StatusVerified
	if err != nil {
		w.logger.Error(fmt.Sprintf("failed to persist bvn verification for %v: %v", s.OwnerID, err))
		w.notify(s.OwnerID, OutcomeWarning, "identity verified, but saving progress failed")
		return NewPersistenceError(err)
	}
	s.KYCID = kycID

	if err := w.store.SetTenantKYCStatus(ctx, s.OwnerID, StatusVerified); err != nil {
		w.logger.Error(fmt.Sprintf("failed to mirror tenant kyc status for %v: %v", s.OwnerID, err))
		w.notify(s.OwnerID, OutcomeWarning, "identity verified, but updating account status failed")
		return NewPersistenceError(err)
	}

	w.notify(s.OwnerID, OutcomeSuccess, "identity verification complete")
	return nil
}

// RetryStage re-attempts the last attempted submission with the same
// input. Callable any number of times; it has no side effects beyond
// re-issuing the external call. It dispatches on the stage of the last
// attempt, not the session's current stage: a failed submission leaves
// the current stage unchanged.
func (w *Workflow) RetryStage(ctx context.Context, s *Session) error {
	if s == nil {
		return ErrSessionRequired
	}
	switch s.lastStage {
	case StageCustomer:
		return w.SubmitCustomerInfo(ctx, s, *s.lastCustomer)
	case StageBank:
		return w.SubmitBankAccount(ctx, s, *s.lastBank)
	case StageBVN:
		return w.SubmitBVN(ctx, s, *s.lastBVN)
	}
	return ErrNothingToRetry
}

// Resume rebuilds a session from persisted progress so a subject can
// continue where a previous session stopped. Backward navigation at the
// caller's level never destroys already-persisted fields.
func (w *Workflow) Resume(ctx context.Context, ownerID string, storeID string) (*Session, error) {
	s := NewSession(ownerID, storeID)

	progress, err := w.store.GetProgressByOwner(ctx, ownerID)
	if err != nil {
		return nil, NewPersistenceError(err)
	}
	if progress == nil {
		return s, nil
	}

	s.KYCID = progress.KYCID
	s.Status = progress.Status
	s.Bank = progress.BankData
	s.BVN = progress.BVNData
	s.CustomerID = progress.Metadata.CustomerID
	if s.StoreID == "" {
		s.StoreID = progress.Metadata.VendorStoreID
	}

	switch {
	case progress.Completed:
		s.Stage = StageDone
	case progress.BankData != nil:
		s.Stage = StageBVN
	case progress.Metadata.CustomerID != "":
		s.Stage = StageBank
	default:
		s.Stage = StageCustomer
	}

	return s, nil
}

// DetectBankAccount performs the synchronous half of the auto-detection
// sub-protocol: fix the bank from the account number, then resolve the
// account name. The two calls fail independently; a failed name lookup
// falls back to the subject's name, then to a generic placeholder.
func (w *Workflow) DetectBankAccount(ctx context.Context, accountNumber string, bankCode string, fullName string) (*BankAccountResult, error) {
	if !ValidAccountNumber(accountNumber) {
		return nil, NewValidationError("account_number", "must be 10 to 12 digits")
	}
	if strings.TrimSpace(bankCode) == "" {
		return nil, NewValidationError("bank_code", "must not be empty")
	}

	result, err := w.client.ResolveBankFromAccountNumber(ctx, accountNumber, bankCode)
	if err != nil {
		return nil, NewProviderError(StageBank, err)
	}

	// The name lookup is a second, independently failing call; its
	// failure must not discard the bank fix above.
	nameResult, nameErr := w.client.ResolveBankAccount(ctx, BankAccountInfo{
		AccountNumber: accountNumber,
		BankCode:      result.BankCode,
		AutoDetected:  true,
	}, fullName)
	switch {
	case nameErr == nil && nameResult.AccountName != "":
		result.AccountName = nameResult.AccountName
	case result.AccountName != "":
		// keep the name the bank fix already carried
	case strings.TrimSpace(fullName) != "":
		result.AccountName = fullName
	default:
		result.AccountName = "Account Holder"
	}

	return result, nil
}
