package rest

import (
	"github.com/simaogato/bankdash-backend/internal/domain"
	"github.com/simaogato/bankdash-backend/internal/usecase/dashboard"
)

// Amounts and balances travel as decimal strings.

// UpdateBalanceRequest replaces an account balance
type UpdateBalanceRequest struct {
	Balance string `json:"balance" validate:"required,numeric"`
}

// EditTextRequest carries raw inline-edit text
type EditTextRequest struct {
	Text string `json:"text"`
}

// EditTransactionFieldRequest carries raw inline-edit text for one transaction field
type EditTransactionFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=recipient description date amount"`
	Text  string `json:"text"`
}

// TransactionRequest is a full transaction record
type TransactionRequest struct {
	Recipient   string `json:"recipient"`
	Description string `json:"description"`
	Amount      string `json:"amount" validate:"required,numeric"`
	Currency    string `json:"currency" validate:"required,len=3"`
	Date        string `json:"date"`
	Status      string `json:"status" validate:"required,oneof=Completed Pending Cancelled"`
	Direction   string `json:"direction" validate:"required,oneof=incoming outgoing"`
	IconType    string `json:"iconType" validate:"required,oneof=transfer shopping income general"`
}

// AddTransactionRequest is the operator's new-transaction form
// Validity to submit (recipient, non-zero amount) is checked by the service.
type AddTransactionRequest struct {
	Recipient       string `json:"recipient"`
	Amount          string `json:"amount" validate:"omitempty,numeric"`
	Currency        string `json:"currency"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	Direction       string `json:"direction"`
	ActiveAccountID string `json:"activeAccountId"`
}

// InjectTransactionsRequest asks for synthetic transactions
type InjectTransactionsRequest struct {
	Count           int    `json:"count" validate:"min=1,max=100"`
	ActiveAccountID string `json:"activeAccountId"`
}

// ProfileFieldRequest replaces one profile field
type ProfileFieldRequest struct {
	Value string `json:"value"`
}

// AccountResponse is the wire form of an account
type AccountResponse struct {
	ID               string `json:"id"`
	Currency         string `json:"currency"`
	Balance          string `json:"balance"`
	FormattedBalance string `json:"formattedBalance"`
	Flag             string `json:"flag"`
	AccountNumber    string `json:"accountNumber"`
}

// TransactionResponse is the wire form of a transaction
type TransactionResponse struct {
	ID              string `json:"id"`
	Recipient       string `json:"recipient"`
	Description     string `json:"description"`
	Amount          string `json:"amount"`
	FormattedAmount string `json:"formattedAmount"`
	SignedAmount    string `json:"signedAmount"`
	Currency        string `json:"currency"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	Direction       string `json:"direction"`
	IconType        string `json:"iconType"`
}

// ProfileResponse is the wire form of the user profile
type ProfileResponse struct {
	Name             string `json:"name"`
	Username         string `json:"username"`
	AvatarURL        string `json:"avatarUrl"`
	MembershipNumber string `json:"membershipNumber"`
	DisplayName      string `json:"displayName"`
}

// AccountViewResponse is the account details page model
type AccountViewResponse struct {
	Account   AccountResponse       `json:"account"`
	IBAN      string                `json:"iban"`
	Count     int                   `json:"count"`
	Pending   []TransactionResponse `json:"pending"`
	Today     []TransactionResponse `json:"today"`
	Yesterday []TransactionResponse `json:"yesterday"`
	Earlier   []TransactionResponse `json:"earlier"`
}

// OverviewResponse is the home page model
type OverviewResponse struct {
	TotalBalance string                `json:"totalBalance"`
	MainAccount  AccountResponse       `json:"mainAccount"`
	Accounts     []AccountResponse     `json:"accounts"`
	Transactions []TransactionResponse `json:"transactions"`
	DisplayName  string                `json:"displayName"`
	AvatarURL    string                `json:"avatarUrl"`
}

// ProfileFieldResponse is the current value of one profile field
type ProfileFieldResponse struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// AddTransactionResponse reports whether the form produced a transaction
type AddTransactionResponse struct {
	Added       bool                 `json:"added"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

func toAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		ID:               acc.ID,
		Currency:         acc.Currency,
		Balance:          acc.Balance.StringFixed(2),
		FormattedBalance: acc.FormattedBalance(),
		Flag:             acc.Flag,
		AccountNumber:    acc.AccountNumber,
	}
}

func toAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, toAccountResponse(acc))
	}
	return out
}

func toTransactionResponse(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		Recipient:       tx.Recipient,
		Description:     tx.Description,
		Amount:          tx.Amount.String(),
		FormattedAmount: tx.FormattedAmount(),
		SignedAmount:    tx.SignedAmount().String(),
		Currency:        tx.Currency,
		Date:            tx.Date,
		Status:          string(tx.Status),
		Direction:       string(tx.Direction),
		IconType:        string(tx.IconType),
	}
}

func toTransactionResponses(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}
	return out
}

func toProfileResponse(p domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		Name:             p.Name,
		Username:         p.Username,
		AvatarURL:        p.AvatarURL,
		MembershipNumber: p.MembershipNumber,
		DisplayName:      p.DisplayName(),
	}
}

func toAccountViewResponse(view dashboard.AccountView) AccountViewResponse {
	return AccountViewResponse{
		Account:   toAccountResponse(view.Account),
		IBAN:      view.IBAN,
		Count:     view.Buckets.Len(),
		Pending:   toTransactionResponses(view.Buckets.Pending),
		Today:     toTransactionResponses(view.Buckets.Today),
		Yesterday: toTransactionResponses(view.Buckets.Yesterday),
		Earlier:   toTransactionResponses(view.Buckets.Earlier),
	}
}

func toOverviewResponse(o dashboard.Overview) OverviewResponse {
	return OverviewResponse{
		TotalBalance: o.MainAccount.FormattedBalance(),
		MainAccount:  toAccountResponse(o.MainAccount),
		Accounts:     toAccountResponses(o.Accounts),
		Transactions: toTransactionResponses(o.Transactions),
		DisplayName:  o.DisplayName,
		AvatarURL:    o.AvatarURL,
	}
}
