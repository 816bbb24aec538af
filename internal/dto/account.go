package dto

import (
	"time"

	"github.com/finledger/finledger/internal/core/domain"
)

// CreateAccountRequest carries the data needed to add an account to the chart
// of accounts.
type CreateAccountRequest struct {
	Code           string `json:"code" binding:"required"`
	Name           string `json:"name" binding:"required"`
	AccountType    string `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	AccountSubtype string `json:"accountSubtype" binding:"required"`
	CurrencyCode   string `json:"currencyCode" binding:"required,len=3"`
	Description    string `json:"description"`
}

// UpdateAccountRequest carries a partial account update. Code, type and
// currency are fixed at creation.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AccountResponse is the outward representation of an account.
type AccountResponse struct {
	AccountID      string    `json:"accountID"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	AccountType    string    `json:"accountType"`
	AccountSubtype string    `json:"accountSubtype"`
	CurrencyCode   string    `json:"currencyCode"`
	Description    string    `json:"description"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListAccountsResponse is a page of accounts plus the next pagination token.
type ListAccountsResponse struct {
	Accounts  []AccountResponse `json:"accounts"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Code:           a.Code,
		Name:           a.Name,
		AccountType:    string(a.AccountType),
		AccountSubtype: string(a.AccountSubtype),
		CurrencyCode:   a.CurrencyCode,
		Description:    a.Description,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
