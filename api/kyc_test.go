package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MartPlace/MartPlace-Backend/services/kyc"
	"github.com/MartPlace/MartPlace-Backend/services/monitoring/logging"
	"github.com/MartPlace/MartPlace-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newHandlerTestLogger() *logging.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &logging.Logger{Logger: log}
}

type handlerStubClient struct {
	createCalls int
}

func (c *handlerStubClient) CreateCustomer(_ context.Context, _ kyc.CustomerInfo) (*kyc.CustomerResult, error) {
	c.createCalls++
	return &kyc.CustomerResult{CustomerID: "CUS_1"}, nil
}

func (c *handlerStubClient) ResolveBankAccount(_ context.Context, _ kyc.BankAccountInfo, _ string) (*kyc.BankAccountResult, error) {
	return &kyc.BankAccountResult{}, nil
}

func (c *handlerStubClient) ResolveBVN(_ context.Context, _ kyc.BVNInfo, _ *kyc.BankAccountInfo, _ string) (*kyc.BVNResult, error) {
	return &kyc.BVNResult{}, nil
}

func (c *handlerStubClient) ResolveBankFromAccountNumber(_ context.Context, _ string, _ string) (*kyc.BankAccountResult, error) {
	return &kyc.BankAccountResult{}, nil
}

type handlerStubStore struct {
	progress *kyc.Progress
}

func (s *handlerStubStore) SaveProgress(_ context.Context, _ string, update kyc.ProgressUpdate) (string, error) {
	return update.KYCID, nil
}

func (s *handlerStubStore) GetProgressByOwner(_ context.Context, _ string) (*kyc.Progress, error) {
	return s.progress, nil
}

func (s *handlerStubStore) SetTenantKYCStatus(_ context.Context, _ string, _ kyc.Status) error {
	return nil
}

func newCustomerInfoContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	body := `{"first_name":"John","last_name":"Doe","email":"john@doe.ng","phone":"08030000000"}`
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/v1/kyc/customer", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	ctx.Set("user", utils.TokenObject{UserID: 7})
	return ctx, recorder
}

// Subjects an operator has parked in a review state must not restart the
// wizard from the first stage either.
func TestSubmitCustomerInfo_ReviewedSubjectsRefused(t *testing.T) {
	tests := []struct {
		name     string
		status   kyc.Status
		wantCode int
	}{
		{"rejected", kyc.StatusRejected, http.StatusForbidden},
		{"flagged", kyc.StatusFlagged, http.StatusForbidden},
		{"verified", kyc.StatusVerified, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &handlerStubClient{}
			store := &handlerStubStore{progress: &kyc.Progress{KYCID: "KYC_1", Status: tt.status}}
			k := &KYC{server: &Server{
				workflow: kyc.NewWorkflow(client, store, nil, nil, newHandlerTestLogger()),
				logger:   newHandlerTestLogger(),
			}}

			ctx, recorder := newCustomerInfoContext(t)
			k.submitCustomerInfo(ctx)

			require.Equal(t, tt.wantCode, recorder.Code)
			require.Equal(t, 0, client.createCalls)
		})
	}
}

func TestSubmitCustomerInfo_FreshSubjectProceeds(t *testing.T) {
	client := &handlerStubClient{}
	k := &KYC{server: &Server{
		workflow: kyc.NewWorkflow(client, &handlerStubStore{}, nil, nil, newHandlerTestLogger()),
		logger:   newHandlerTestLogger(),
	}}

	ctx, recorder := newCustomerInfoContext(t)
	k.submitCustomerInfo(ctx)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 1, client.createCalls)
}
