package kyc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MartPlace/MartPlace-Backend/providers"
	dojahmodels "github.com/MartPlace/MartPlace-Backend/providers/kyc/dojah_models"
	"github.com/MartPlace/MartPlace-Backend/services/monitoring/logging"
	"github.com/MartPlace/MartPlace-Backend/utils"
	"github.com/sirupsen/logrus"
)

type DOJAHProvider struct {
	providers.BaseProvider
	config *KYCConfig
}

type KYCConfig struct {
	KYCProviderName    string `mapstructure:"KYC_PROVIDER_NAME"`
	KYCProviderID      string `mapstructure:"DOJAH_APP_ID"`
	KYCProviderKey     string `mapstructure:"DOJAH_KEY"`
	KYCProviderBaseUrl string `mapstructure:"DOJAH_BASE_URL"`
}

func NewKYCProvider() *DOJAHProvider {

	var c KYCConfig

	err := utils.LoadCustomConfig(utils.EnvPath, &c)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	return &DOJAHProvider{
		BaseProvider: providers.BaseProvider{
			Name:    c.KYCProviderName,
			BaseURL: c.KYCProviderBaseUrl,
			APIKey:  c.KYCProviderKey,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
		},
		config: &c,
	}
}

// MatchBVN verifies an 11-digit BVN against the holder's submitted names.
// The optional account number and bank code tighten the match when the
// caller has already completed bank-account resolution.
func (p *DOJAHProvider) MatchBVN(request dojahmodels.BVNMatchRequest) (*dojahmodels.BVNMatchEntity, error) {

	var requiredHeaders = make(map[string]string)
	requiredHeaders["AppId"] = p.config.KYCProviderID
	requiredHeaders["Authorization"] = p.config.KYCProviderKey

	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("unexpected status code: %v", err.Error())
	}

	// Path params
	base.Path += "api/v1/kyc/bvn/verify"

	resp, err := p.MakeRequest("POST", base.String(), request, requiredHeaders)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Read response body for logging
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	// Log request and response details
	logFields := logrus.Fields{
		"status_code": resp.StatusCode,
		"url":         resp.Request.URL,
		"method":      resp.Request.Method,
		"response":    string(bodyBytes),
	}

	if resp.StatusCode == http.StatusOK {
		logging.NewLogger().WithFields(logFields).Info("Successful response from Dojah API")
	} else {
		logging.NewLogger().WithFields(logFields).Error("Unexpected response from Dojah API")
	}

	// Reset the response body for subsequent reads
	resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	// Decode the response body
	var newModel dojahmodels.BVNMatchResponse
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&newModel)
	if err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	return &newModel.Entity, nil
}

// LookupAccount resolves a NUBAN account number against a bank code,
// returning the registered account and bank names. Used by the
// bank-account auto-detection path.
func (p *DOJAHProvider) LookupAccount(accountNumber string, bankCode string) (*dojahmodels.AccountEntity, error) {

	var requiredHeaders = make(map[string]string)
	requiredHeaders["AppId"] = p.config.KYCProviderID
	requiredHeaders["Authorization"] = p.config.KYCProviderKey

	base, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("unexpected status code: %v", err.Error())
	}

	// Path params
	base.Path += "api/v1/general/account"

	// Query params
	params := url.Values{}
	params.Add("account_number", accountNumber)
	params.Add("bank_code", bankCode)
	base.RawQuery = params.Encode()

	resp, err := p.MakeRequest("GET", base.String(), nil, requiredHeaders)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Read and log the full response body for tracking
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.NewLogger().Error("Failed to read response body", err)
	} else {
		logFields := logrus.Fields{
			"status_code": resp.StatusCode,
			"url":         resp.Request.URL,
			"headers":     resp.Header,
			"body":        string(bodyBytes),
		}

		if resp.StatusCode == http.StatusOK {
			logging.NewLogger().WithFields(logFields).Info("Successful response from Dojah API")
		} else {
			logging.NewLogger().WithFields(logFields).Error("Unexpected response from Dojah API")
		}
	}

	// Reset the response body for subsequent reads
	resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	// Decode the response body
	var newModel dojahmodels.AccountResponse
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&newModel)
	if err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	return &newModel.Entity, nil
}
