package kyc

import (
	"context"
	"strings"

	"github.com/MartPlace/MartPlace-Backend/providers/fiat"
	kycprovider "github.com/MartPlace/MartPlace-Backend/providers/kyc"
	dojahmodels "github.com/MartPlace/MartPlace-Backend/providers/kyc/dojah_models"
)

// ProviderClient adapts the Paystack and Dojah providers to the
// workflow's VerificationClient contract.
type ProviderClient struct {
	fiat *fiat.PaystackProvider
	kyc  *kycprovider.DOJAHProvider
}

func NewProviderClient(fiatProvider *fiat.PaystackProvider, kycProvider *kycprovider.DOJAHProvider) *ProviderClient {
	return &ProviderClient{
		fiat: fiatProvider,
		kyc:  kycProvider,
	}
}

func (c *ProviderClient) CreateCustomer(_ context.Context, info CustomerInfo) (*CustomerResult, error) {
	customer, err := c.fiat.CreateCustomer(info.FirstName, info.LastName, info.Email, info.Phone)
	if err != nil {
		return nil, err
	}
	return &CustomerResult{
		CustomerID:   customer.CustomerCode,
		CustomerCode: customer.CustomerCode,
	}, nil
}

func (c *ProviderClient) ResolveBankAccount(_ context.Context, info BankAccountInfo, fullName string) (*BankAccountResult, error) {
	account, err := c.fiat.ResolveAccount(info.AccountNumber, info.BankCode)
	if err != nil {
		return nil, err
	}

	matchStatus := matchNames(fullName, account.AccountName)
	return &BankAccountResult{
		Verified:      account.AccountName != "" && matchStatus != MatchNone,
		AccountName:   account.AccountName,
		BankCode:      info.BankCode,
		AccountNumber: account.AccountNumber,
		MatchStatus:   matchStatus,
	}, nil
}

func (c *ProviderClient) ResolveBVN(_ context.Context, info BVNInfo, account *BankAccountInfo, fullName string) (*BVNResult, error) {
	first, last := splitName(fullName)
	request := dojahmodels.BVNMatchRequest{
		BVN:       info.BVN,
		FirstName: first,
		LastName:  last,
	}
	if account != nil {
		request.AccountNumber = account.AccountNumber
		request.BankCode = account.BankCode
	}

	entity, err := c.kyc.MatchBVN(request)
	if err != nil {
		return nil, err
	}

	verified := entity.BVN.Status && entity.FirstName.Status && entity.LastName.Status
	matchStatus := MatchNone
	switch {
	case verified:
		matchStatus = MatchExact
	case entity.BVN.Status:
		matchStatus = MatchPartial
	}

	return &BVNResult{
		Verified:    verified,
		FirstName:   entity.FirstName.Value,
		LastName:    entity.LastName.Value,
		MiddleName:  entity.MiddleName.Value,
		Phone:       entity.PhoneNumber.Value,
		DateOfBirth: entity.DateOfBirth.Value,
		MatchStatus: matchStatus,
	}, nil
}

func (c *ProviderClient) ResolveBankFromAccountNumber(_ context.Context, accountNumber string, bankCode string) (*BankAccountResult, error) {
	entity, err := c.kyc.LookupAccount(accountNumber, bankCode)
	if err != nil {
		return nil, err
	}
	return &BankAccountResult{
		Verified:      true,
		AccountName:   entity.AccountName,
		BankName:      entity.BankName,
		BankCode:      entity.BankCode,
		AccountNumber: entity.AccountNumber,
	}, nil
}

// matchNames classifies how a submitted name compares to the name the
// bank holds. Comparison is token-based and case-insensitive because
// banks return names in arbitrary order and casing.
func matchNames(submitted string, resolved string) string {
	if strings.TrimSpace(submitted) == "" || strings.TrimSpace(resolved) == "" {
		// Nothing to compare against; resolution alone decides
		if resolved != "" {
			return MatchPartial
		}
		return MatchNone
	}

	submittedTokens := strings.Fields(strings.ToUpper(submitted))
	resolvedTokens := strings.Fields(strings.ToUpper(resolved))

	matched := 0
	for _, token := range submittedTokens {
		for _, candidate := range resolvedTokens {
			if token == candidate {
				matched++
				break
			}
		}
	}

	switch {
	case matched == len(submittedTokens):
		return MatchExact
	case matched > 0:
		return MatchPartial
	default:
		return MatchNone
	}
}

func splitName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[len(parts)-1]
}
