package fiat

import "time"

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Response on Fetching Banks
type BankCollection []Bank

type Bank struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Code             string    `json:"code"`
	Longcode         string    `json:"longcode"`
	Gateway          string    `json:"gateway"`
	PayWithBank      bool      `json:"pay_with_bank"`
	SupportsTransfer bool      `json:"supports_transfer"`
	Active           bool      `json:"active"`
	Country          string    `json:"country"`
	Currency         string    `json:"currency"`
	Type             string    `json:"type"`
	IsDeleted        bool      `json:"is_deleted"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Response on resolving account information
type AccountInfo struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankID        int64  `json:"bank_id"`
}

type CreateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Response on creating a customer record
type Customer struct {
	ID           int64     `json:"id"`
	CustomerCode string    `json:"customer_code"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Domain       string    `json:"domain"`
	Integration  int       `json:"integration"`
	Identified   bool      `json:"identified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
