package kyc

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MartPlace/MartPlace-Backend/services/monitoring/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logging.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &logging.Logger{Logger: log}
}

type stubClient struct {
	mu sync.Mutex

	createResult *CustomerResult
	createErr    error
	createCalls  int

	resolveResult *BankAccountResult
	resolveErr    error
	resolveCalls  int

	bvnResult *BVNResult
	bvnErr    error
	bvnCalls  int

	detectResult *BankAccountResult
	detectErr    error
	detectCalls  int
	lastDetected string

	blockDetect chan struct{}
}

func (c *stubClient) CreateCustomer(_ context.Context, _ CustomerInfo) (*CustomerResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.createCalls++
	if c.createErr != nil {
		return nil, c.createErr
	}
	return c.createResult, nil
}

func (c *stubClient) ResolveBankAccount(_ context.Context, _ BankAccountInfo, _ string) (*BankAccountResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolveCalls++
	if c.resolveErr != nil {
		return nil, c.resolveErr
	}
	return c.resolveResult, nil
}

func (c *stubClient) ResolveBVN(_ context.Context, _ BVNInfo, _ *BankAccountInfo, _ string) (*BVNResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bvnCalls++
	if c.bvnErr != nil {
		return nil, c.bvnErr
	}
	return c.bvnResult, nil
}

func (c *stubClient) ResolveBankFromAccountNumber(_ context.Context, accountNumber string, _ string) (*BankAccountResult, error) {
	c.mu.Lock()
	c.detectCalls++
	c.lastDetected = accountNumber
	block := c.blockDetect
	c.mu.Unlock()

	if block != nil {
		<-block
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detectErr != nil {
		return nil, c.detectErr
	}
	return c.detectResult, nil
}

type stubStore struct {
	mu sync.Mutex

	saveCalls   int
	createCalls int
	lastUpdate  ProgressUpdate
	saveErr     error
	nextID      string

	progress *Progress
	getErr   error

	statusCalls int
	lastStatus  Status
	statusErr   error
}

func (s *stubStore) SaveProgress(_ context.Context, _ string, update ProgressUpdate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveCalls++
	s.lastUpdate = update
	if s.saveErr != nil {
		return "", s.saveErr
	}
	if update.KYCID != "" {
		return update.KYCID, nil
	}
	s.createCalls++
	return s.nextID, nil
}

func (s *stubStore) GetProgressByOwner(_ context.Context, _ string) (*Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.progress, nil
}

func (s *stubStore) SetTenantKYCStatus(_ context.Context, _ string, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusCalls++
	s.lastStatus = status
	return s.statusErr
}

type stubBanks map[string]string

func (b stubBanks) Lookup(code string) (string, bool) {
	name, ok := b[code]
	return name, ok
}

type stubNotifier struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func (n *stubNotifier) Notify(_ string, outcome Outcome, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.outcomes = append(n.outcomes, outcome)
}

func (n *stubNotifier) last() Outcome {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.outcomes) == 0 {
		return ""
	}
	return n.outcomes[len(n.outcomes)-1]
}

func testBanks() stubBanks {
	return stubBanks{
		"044": "Access Bank",
		"058": "Guaranty Trust Bank",
	}
}

func newTestWorkflow(client *stubClient, store *stubStore) (*Workflow, *stubNotifier) {
	notifier := &stubNotifier{}
	return NewWorkflow(client, store, testBanks(), notifier, newTestLogger()), notifier
}

func TestSubmitCustomerInfo_Success(t *testing.T) {
	client := &stubClient{createResult: &CustomerResult{CustomerID: "CUS_1", CustomerCode: "CUS_1"}}
	store := &stubStore{nextID: "KYC_1"}
	workflow, _ := newTestWorkflow(client, store)

	session := NewSession("owner-1", "store-1")
	err := workflow.SubmitCustomerInfo(context.Background(), session, CustomerInfo{
		FirstName: "John", LastName: "Doe", Email: "john@doe.ng", Phone: "08030000000",
	})

	require.NoError(t, err)
	require.Equal(t, "CUS_1", session.CustomerID)
	require.Equal(t, StageBank, session.Stage)
	// no persistence at this stage
	require.Equal(t, 0, store.saveCalls)
}

func TestSubmitCustomerInfo_MissingField(t *testing.T) {
	client := &stubClient{}
	store := &stubStore{}
	workflow, _ := newTestWorkflow(client, store)

	session := NewSession("owner-1", "")
	err := workflow.SubmitCustomerInfo(context.Background(), session, CustomerInfo{
		FirstName: "John", LastName: "Doe", Email: "", Phone: "08030000000",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "email", validationErr.Field)
	require.Equal(t, 0, client.createCalls)
	require.Equal(t, StageCustomer, session.Stage)
}

func TestSubmitCustomerInfo_ProviderError(t *testing.T) {
	client := &stubClient{createErr: errors.New("network down")}
	store := &stubStore{}
	workflow, notifier := newTestWorkflow(client, store)

	session := NewSession("owner-1", "")
	err := workflow.SubmitCustomerInfo(context.Background(), session, CustomerInfo{
		FirstName: "John", LastName: "Doe", Email: "john@doe.ng", Phone: "08030000000",
	})

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	require.Equal(t, StageCustomer, session.Stage)
	require.Empty(t, session.CustomerID)
	require.Equal(t, OutcomeError, notifier.last())
}

func TestSubmitBankAccount_Success(t *testing.T) {
	client := &stubClient{resolveResult: &BankAccountResult{
		Verified:    true,
		AccountName: "JOHN DOE",
		BankName:    "Access Bank",
		MatchStatus: MatchExact,
	}}
	store := &stubStore{nextID: "KYC_1"}
	workflow, notifier := newTestWorkflow(client, store)

	session := NewSession("owner-1", "store-1")
	session.CustomerID = "CUS_1"
	err := workflow.SubmitBankAccount(context.Background(), session, BankAccountInfo{
		AccountNumber: "0123456789",
		BankCode:      "044",
		AccountName:   "John Doe",
	})

	require.NoError(t, err)
	require.Equal(t, StageBVN, session.Stage)
	require.Equal(t, "KYC_1", session.KYCID)
	require.Equal(t, 1, store.saveCalls)
	require.Equal(t, StatusPending, store.lastUpdate.Status)
	require.Equal(t, "JOHN DOE", store.lastUpdate.BankData.AccountName)
	require.Equal(t, "Access Bank", store.lastUpdate.BankData.BankName)
	require.Equal(t, StageBank, store.lastUpdate.Metadata.Stage)
	require.Equal(t, "CUS_1", store.lastUpdate.Metadata.CustomerID)
	require.False(t, store.lastUpdate.Completed)
	require.Equal(t, OutcomeSuccess, notifier.last())
}

func TestSubmitBankAccount_InvalidNumberSkipsProvider(t *testing.T) {
	client := &stubClient{}
	store := &stubStore{}
	workflow, _ := newTestWorkflow(client, store)

	session := NewSession("owner-1", "")
	for _, number := range []string{"", "012345", "0123456789012345", "01234abcde"} {
		err := workflow.SubmitBankAccount(context.Background(), session, BankAccountInfo{
			AccountNumber: number,
			BankCode:      "044",
			AccountName:   "John Doe",
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "account number %q", number)
	}
	require.Equal(t, 0, client.resolveCalls)
}

func TestSubmitBankAccount_UnknownBankCode(t *testing.T) {
	client := &stubClient{}
	store := &stubStore{}
	workflow, _ := newTestWorkflow(client, store)

	session := NewSession("owner-1", "")
	err := workflow.SubmitBankAccount(context.Background(), session, BankAccountInfo{
		AccountNumber: "0123456789",
		BankCode:      "999",
		AccountName:   "John Doe",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "bank_code", validationErr.Field)
	require.Equal(t, 0, client.resolveCalls)
}

func TestSubmitBankAccount_NotVerifiedWritesNothing(t *testing.T) {
	client := &stubClient{resolveResult: &BankAccountResult{Verified: false, MatchStatus: MatchNone}}
	store := &stubStore{}
	workflow, notifier := newTestWorkflow(client, store)

	session := NewSession("owner-1", "")
	err := workflow.SubmitBankAccount(context.Background(), session, BankAccountInfo{
		AccountNumber: "0123456789",
		BankCode:      "044",
		AccountName:   "John Doe",
	})

	var rejected *VerificationRejected
	require.ErrorAs(t, err, &rejected)
	require.Equal(t, StageBank, rejected.Stage)
	require.Equal(t, 0, store.saveCalls)
	require.Equal(t, StageCustomer, session.Stage)
	require.Nil(t, session.Bank)
	require.Equal(t, OutcomeRejected, notifier.last())
}

func TestSubmitBankAccount_PersistenceFailureStillAdvances(t *testing.T) {
	client := &stubClient{resolveResult: &BankAccountResult{
		Verified:    true,
		AccountName: "JOHN DOE",
		MatchStatus: MatchExact,
	}}
	store := &stubStore{saveErr: errors.New("db down")}
	workflow, notifier := newTestWorkflow(client, store)

	session := NewSession("owner-1", "")
	err := workflow.SubmitBankAccount(context.Background(), session, BankAccountInfo{
		AccountNumber: "0123456789",
		BankCode:      "044",
		AccountName:   "John Doe",
	})

	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	// verification succeeded, the in-memory flow still advances
	require.Equal(t, StageBVN, session.Stage)
	require.NotNil(t, session.Bank)
	require.Empty(t, session.KYCID)
	require.Equal(t, OutcomeWarning, notifier.last())
}

func TestSubmitBVN_Success(t *testing.T) {
	client := &stubClient{bvnResult: &BVNResult{
		Verified:    true,
		FirstName:   "John",
		LastName:    "Doe",
		MatchStatus: MatchExact,
	}}
	store := &stubStore{nextID: "KYC_1"}
	workflow, notifier := newTestWorkflow(client, store)

	session := NewSession("owner-1", "store-1")
	session.KYCID = "KYC_1"
	session.Bank = &BankData{
		BankCode:      "044",
		AccountNumber: "0123456789",
		AccountName:   "JOHN DOE",
		Verified:      true,
	}

	err := workflow.SubmitBVN(context.Background(), session, BVNInfo{BVN: "12345678901"})

	require.NoError(t, err)
	require.Equal(t, StageDone, session.Stage)
	require.Equal(t, StatusVerified, session.Status)
	// update reuses the stable id rather than creating a second record
	require.Equal(t, "KYC_1", session.KYCID)
	require.Equal(t, "KYC_1", store.lastUpdate.KYCID)
	require.Equal(t, 0, store.createCalls)
	require.Equal(t, StatusVerified, store.lastUpdate.Status)
	require.True(t, store.lastUpdate.Completed)
	require.NotNil(t, store.lastUpdate.BankData)
	require.Equal(t, "12345678901", store.lastUpdate.BVNData.BVN)
	require.Equal(t, 1, store.statusCalls)
	require.Equal(t, StatusVerified, store.lastStatus)
	require.Equal(t, OutcomeSuccess, notifier.last())
}

func TestSubmitBVN_InvalidLengthSkipsProvider(t *testing.T) {
	client := &stubClient{}
	store := &stubStore{}
	workflow, _ := newTestWorkflow(client, store)

	session := NewSession("owner-1", "")
	session.Bank = &BankData{AccountNumber: "0123456789", BankCode: "044"}

	for _, bvn := range []string{"1234", "123456789012", "1234567890a"} {
		err := workflow.SubmitBVN(context.Background(), session, BVNInfo{BVN: bvn})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "bvn %q", bvn)
		require.Equal(t, "bvn", validationErr.Field)
	}
	require.Equal(t, 0, client.bvnCalls)
}

func TestSubmitBVN_RequiresBankData(t *testing.T) {
	client := &stubClient{}
	store := &stubStore{}
	workflow, _ := newTestWorkflow(client, store)

	session := NewSession("owner-1", "")
	err := workflow.SubmitBVN(context.Background(), session, BVNInfo{BVN: "12345678901"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "stage", validationErr.Field)
	require.Equal(t, 0, client.bvnCalls)
}

func TestSubmitBVN_NotVerified(t *testing.T) {
	client := &stubClient{bvnResult: &BVNResult{Verified: false, MatchStatus: MatchNone}}
	store := &stubStore{}
	workflow, _ := newTestWorkflow(client, store)

	session := NewSession("owner-1", "")
	session.Bank = &BankData{AccountNumber: "0123456789", BankCode: "044"}

	err := workflow.SubmitBVN(context.Background(), session, BVNInfo{BVN: "12345678901"})

	var rejected *VerificationRejected
	require.ErrorAs(t, err, &rejected)
	require.Equal(t, 0, store.saveCalls)
	require.Equal(t, 0, store.statusCalls)
	require.NotEqual(t, StatusVerified, session.Status)
	require.NotEqual(t, StageDone, session.Stage)
}

func TestSubmitBVN_TenantMirrorFailure(t *testing.T) {
	client := &stubClient{bvnResult: &BVNResult{Verified: true, MatchStatus: MatchExact}}
	store := &stubStore{nextID: "KYC_1", statusErr: errors.New("db down")}
	workflow, notifier := newTestWorkflow(client, store)

	session := NewSession("owner-1", "")
	session.KYCID = "KYC_1"
	session.Bank = &BankData{AccountNumber: "0123456789", BankCode: "044"}

	err := workflow.SubmitBVN(context.Background(), session, BVNInfo{BVN: "12345678901"})

	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	require.Equal(t, StageDone, session.Stage)
	require.Equal(t, OutcomeWarning, notifier.last())
}

func TestStableKYCIDAcrossFullRun(t *testing.T) {
	client := &stubClient{
		createResult:  &CustomerResult{CustomerID: "CUS_1"},
		resolveResult: &BankAccountResult{Verified: true, AccountName: "JOHN DOE", MatchStatus: MatchExact},
		bvnResult:     &BVNResult{Verified: true, MatchStatus: MatchExact},
	}
	store := &stubStore{nextID: "KYC_1"}
	workflow, _ := newTestWorkflow(client, store)

	session := NewSession("owner-1", "store-1")
	ctx := context.Background()

	require.NoError(t, workflow.SubmitCustomerInfo(ctx, session, CustomerInfo{
		FirstName: "John", LastName: "Doe", Email: "john@doe.ng", Phone: "08030000000",
	}))
	require.NoError(t, workflow.SubmitBankAccount(ctx, session, BankAccountInfo{
		AccountNumber: "0123456789", BankCode: "044", AccountName: "John Doe",
	}))
	require.NoError(t, workflow.SubmitBVN(ctx, session, BVNInfo{BVN: "12345678901"}))

	// exactly one record was ever created, every later save reused it
	require.Equal(t, 1, store.createCalls)
	require.Equal(t, 2, store.saveCalls)
	require.Equal(t, "KYC_1", session.KYCID)
	require.Equal(t, "KYC_1", store.lastUpdate.KYCID)
}

func TestRetryStage(t *testing.T) {
	client := &stubClient{resolveErr: errors.New("timeout")}
	store := &stubStore{nextID: "KYC_1"}
	workflow, _ := newTestWorkflow(client, store)

	session := NewSession("owner-1", "")
	input := BankAccountInfo{AccountNumber: "0123456789", BankCode: "044", AccountName: "John Doe"}

	var providerErr *ProviderError
	require.ErrorAs(t, workflow.SubmitBankAccount(context.Background(), session, input), &providerErr)
	require.Equal(t, 1, client.resolveCalls)
	// the failed attempt leaves the current stage untouched
	require.Equal(t, StageCustomer, session.Stage)

	// provider recovers, retry re-submits the same input
	client.mu.Lock()
	client.resolveErr = nil
	client.resolveResult = &BankAccountResult{Verified: true, AccountName: "JOHN DOE", MatchStatus: MatchExact}
	client.mu.Unlock()

	require.NoError(t, workflow.RetryStage(context.Background(), session))
	require.Equal(t, 2, client.resolveCalls)
	require.Equal(t, StageBVN, session.Stage)
}

func TestRetryStage_RetriesLastAttemptedStage(t *testing.T) {
	client := &stubClient{createErr: errors.New("timeout")}
	workflow, _ := newTestWorkflow(client, &stubStore{})

	session := NewSession("owner-1", "")
	info := CustomerInfo{FirstName: "John", LastName: "Doe", Email: "john@doe.ng", Phone: "08030000000"}

	var providerErr *ProviderError
	require.ErrorAs(t, workflow.SubmitCustomerInfo(context.Background(), session, info), &providerErr)

	client.mu.Lock()
	client.createErr = nil
	client.createResult = &CustomerResult{CustomerID: "CUS_1"}
	client.mu.Unlock()

	require.NoError(t, workflow.RetryStage(context.Background(), session))
	require.Equal(t, 2, client.createCalls)
	require.Equal(t, "CUS_1", session.CustomerID)
	require.Equal(t, StageBank, session.Stage)
}

func TestRetryStage_NothingToRetry(t *testing.T) {
	workflow, _ := newTestWorkflow(&stubClient{}, &stubStore{})
	session := NewSession("owner-1", "")

	require.ErrorIs(t, workflow.RetryStage(context.Background(), session), ErrNothingToRetry)
}

func TestResume_StageMapping(t *testing.T) {
	tests := []struct {
		name     string
		progress *Progress
		want     Stage
	}{
		{"no progress", nil, StageCustomer},
		{"customer only", &Progress{Status: StatusPending, Metadata: Metadata{CustomerID: "CUS_1"}}, StageBank},
		{"bank verified", &Progress{Status: StatusPending, BankData: &BankData{BankCode: "044"}}, StageBVN},
		{"completed", &Progress{Status: StatusVerified, Completed: true, BankData: &BankData{}, BVNData: &BVNData{}}, StageDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{progress: tt.progress}
			workflow, _ := newTestWorkflow(&stubClient{}, store)

			session, err := workflow.Resume(context.Background(), "owner-1", "")
			require.NoError(t, err)
			require.Equal(t, tt.want, session.Stage)
		})
	}
}

func TestResume_RestoresSnapshot(t *testing.T) {
	store := &stubStore{progress: &Progress{
		KYCID:    "KYC_9",
		Status:   StatusPending,
		BankData: &BankData{BankCode: "044", AccountNumber: "0123456789", AccountName: "JOHN DOE"},
		Metadata: Metadata{Stage: StageBank, VendorStoreID: "store-7", CustomerID: "CUS_9"},
	}}
	workflow, _ := newTestWorkflow(&stubClient{}, store)

	session, err := workflow.Resume(context.Background(), "owner-1", "")
	require.NoError(t, err)
	require.Equal(t, "KYC_9", session.KYCID)
	require.Equal(t, "CUS_9", session.CustomerID)
	require.Equal(t, "store-7", session.StoreID)
	require.Equal(t, "0123456789", session.Bank.AccountNumber)
}

func TestClosedSessionsRefuseSubmissions(t *testing.T) {
	workflow, _ := newTestWorkflow(&stubClient{}, &stubStore{})

	for status, want := range map[Status]error{
		StatusRejected: ErrUnderReview,
		StatusFlagged:  ErrUnderReview,
		StatusVerified: ErrAlreadyVerified,
	} {
		session := NewSession("owner-1", "")
		session.Status = status

		err := workflow.SubmitCustomerInfo(context.Background(), session, CustomerInfo{
			FirstName: "John", LastName: "Doe", Email: "john@doe.ng", Phone: "08030000000",
		})
		require.ErrorIs(t, err, want, "status %v", status)
	}
}
