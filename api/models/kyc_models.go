package models

// Stage 1 submission
type CustomerInfoRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	StoreID   string `json:"store_id"`
}

// Stage 2 submission. The wizard echoes back the customer context it
// received from Stage 1 since nothing is persisted before this stage.
type BankAccountRequest struct {
	AccountNumber string `json:"account_number" binding:"required,acctnumber"`
	BankCode      string `json:"bank_code" binding:"required"`
	AccountName   string `json:"account_name"`
	AutoDetected  bool   `json:"auto_detected"`
	CustomerID    string `json:"customer_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	StoreID       string `json:"store_id"`
}

// Auto-detection trigger
type ResolveAccountRequest struct {
	AccountNumber string `json:"account_number" binding:"required,acctnumber"`
	BankCode      string `json:"bank_code" binding:"required"`
	FullName      string `json:"full_name"`
}

// Stage 3 submission
type BVNRequest struct {
	BVN     string `json:"bvn" binding:"required,bvn"`
	StoreID string `json:"store_id"`
}

type CustomerInfoResponse struct {
	CustomerID string `json:"customer_id"`
	Stage      string `json:"stage"`
}

type KYCProgressResponse struct {
	KYCID      string               `json:"kyc_id,omitempty"`
	Status     string               `json:"status"`
	Stage      string               `json:"stage"`
	Completed  bool                 `json:"completed"`
	CustomerID string               `json:"customer_id,omitempty"`
	Bank       *BankDataResponse    `json:"bank_account,omitempty"`
	BVN        *BVNDataResponse     `json:"bvn,omitempty"`
}

type BankDataResponse struct {
	BankCode      string `json:"bank_code"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Verified      bool   `json:"verified"`
	MatchStatus   string `json:"match_status"`
}

type BVNDataResponse struct {
	BVN         string `json:"bvn"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	MiddleName  string `json:"middle_name,omitempty"`
	Verified    bool   `json:"verified"`
	MatchStatus string `json:"match_status"`
}

type NotificationResponse struct {
	ID      int64  `json:"id"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

// Operator review action
type ReviewStatusRequest struct {
	OwnerID string `json:"owner_id" binding:"required"`
	Status  string `json:"status" binding:"required,oneof=pending rejected flagged"`
}
