package dashboard

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/simaogato/bankdash-backend/internal/domain"
	"github.com/simaogato/bankdash-backend/internal/logger"
	"github.com/simaogato/bankdash-backend/internal/metrics"
	"github.com/simaogato/bankdash-backend/internal/usecase/classifier"
	"github.com/simaogato/bankdash-backend/internal/usecase/coercion"
	"github.com/simaogato/bankdash-backend/internal/usecase/factory"
	"github.com/simaogato/bankdash-backend/internal/usecase/generator"
)

// Operation names used in logs and metrics
const (
	OpUpdateBalance      = "update_balance"
	OpUpsertTransaction  = "upsert_transaction"
	OpAddTransaction     = "add_transaction"
	OpUpdateProfileField = "update_profile_field"
	OpEditBalance        = "edit_balance"
	OpEditTransaction    = "edit_transaction"
	OpEditProfile        = "edit_profile"
	OpSubmitTransaction  = "submit_transaction"
)

// Transaction fields that can be edited inline
const (
	FieldRecipient   = "recipient"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldAmount      = coercion.FieldAmount
)

// AccountView is what the account details page renders
type AccountView struct {
	Account domain.Account
	IBAN    string
	Buckets classifier.Buckets
}

// Overview is what the home page renders
type Overview struct {
	MainAccount  domain.Account // first account; its balance is the "total balance"
	Accounts     []domain.Account
	Transactions []domain.Transaction
	DisplayName  string
	AvatarURL    string
}

// DashboardService handles the dashboard read model and demo edits
// No operation returns an error: unknown IDs and invalid input are ignored and logged.
type DashboardService struct {
	AccountRepo     domain.AccountRepository
	TransactionRepo domain.TransactionRepository
	ProfileRepo     domain.ProfileRepository

	Factory   *factory.Factory
	Generator *generator.Generator
	Metrics   metrics.Recorder
	Logger    zerolog.Logger

	genMu sync.Mutex
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	accountRepo domain.AccountRepository,
	transactionRepo domain.TransactionRepository,
	profileRepo domain.ProfileRepository,
) *DashboardService {
	return &DashboardService{
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		ProfileRepo:     profileRepo,
		Factory:         factory.NewFactory(nil),
		Generator:       generator.NewGenerator(0),
		Metrics:         metrics.Nop{},
		Logger:          logger.Nop(),
	}
}

// GetAccounts returns the current accounts in insertion order
func (s *DashboardService) GetAccounts(ctx context.Context) []domain.Account {
	return s.AccountRepo.List(ctx)
}

// GetTransactions returns the current transactions, most recent first
func (s *DashboardService) GetTransactions(ctx context.Context) []domain.Transaction {
	return s.TransactionRepo.List(ctx)
}

// GetProfile returns the current user profile
func (s *DashboardService) GetProfile(ctx context.Context) domain.UserProfile {
	return s.ProfileRepo.Get(ctx)
}

// GetProfileField returns the current value of one profile field
// The flag is false for unknown field names.
func (s *DashboardService) GetProfileField(ctx context.Context, field domain.ProfileField) (string, bool) {
	profile := s.ProfileRepo.Get(ctx)
	return profile.Get(field)
}

// UpdateBalance replaces the balance of one account. Unknown IDs are a no-op.
func (s *DashboardService) UpdateBalance(ctx context.Context, accountID string, balance decimal.Decimal) {
	applied := s.AccountRepo.UpdateBalance(ctx, accountID, balance)
	s.record(ctx, OpUpdateBalance, applied).
		Str("account_id", accountID).
		Str("balance", balance.String()).
		Msg("balance update")
}

// UpsertTransaction replaces every field of the existing record with the same ID.
// Unknown IDs and malformed records are a no-op. A negative amount is stored as an
// outgoing magnitude.
func (s *DashboardService) UpsertTransaction(ctx context.Context, tx domain.Transaction) {
	tx = tx.Normalized()
	if err := tx.Validate(); err != nil {
		s.record(ctx, OpUpsertTransaction, false).
			Err(err).
			Str("transaction_id", tx.ID).
			Msg("transaction rejected")
		return
	}

	applied := s.TransactionRepo.Upsert(ctx, tx)
	s.record(ctx, OpUpsertTransaction, applied).
		Str("transaction_id", tx.ID).
		Msg("transaction upsert")
}

// AddTransaction prepends a transaction to the feed and returns what was stored
// When activeAccountID names an existing account, the transaction currency is
// forced to that account's currency.
func (s *DashboardService) AddTransaction(ctx context.Context, tx domain.Transaction, activeAccountID string) domain.Transaction {
	if activeAccountID != "" {
		if account, ok := s.AccountRepo.GetByID(ctx, activeAccountID); ok {
			tx.Currency = account.Currency
		}
	}
	tx = tx.Normalized()

	s.TransactionRepo.Prepend(ctx, tx)
	s.Metrics.TransactionCount(s.TransactionRepo.Count(ctx))
	s.record(ctx, OpAddTransaction, true).
		Str("transaction_id", tx.ID).
		Str("currency", tx.Currency).
		Str("active_account_id", activeAccountID).
		Msg("transaction added")

	return tx
}

// UpdateProfileField replaces exactly one profile field. Unknown fields are a no-op.
func (s *DashboardService) UpdateProfileField(ctx context.Context, field domain.ProfileField, value string) {
	applied := s.ProfileRepo.UpdateField(ctx, field, value)
	s.record(ctx, OpUpdateProfileField, applied).
		Str("field", string(field)).
		Msg("profile update")
}

// GetAccountView returns an account with its classified transactions
func (s *DashboardService) GetAccountView(ctx context.Context, accountID string) (AccountView, bool) {
	account, ok := s.AccountRepo.GetByID(ctx, accountID)
	if !ok {
		return AccountView{}, false
	}

	return AccountView{
		Account: account,
		IBAN:    account.IBAN(),
		Buckets: classifier.Classify(s.TransactionRepo.List(ctx), account.Currency),
	}, true
}

// GetOverview returns the home page model
func (s *DashboardService) GetOverview(ctx context.Context) Overview {
	accounts := s.AccountRepo.List(ctx)
	profile := s.ProfileRepo.Get(ctx)

	overview := Overview{
		Accounts:     accounts,
		Transactions: s.TransactionRepo.List(ctx),
		DisplayName:  profile.DisplayName(),
		AvatarURL:    profile.AvatarURL,
	}
	if len(accounts) > 0 {
		overview.MainAccount = accounts[0]
	}

	return overview
}

// record counts a mutation outcome and returns a debug log event for it
func (s *DashboardService) record(ctx context.Context, op string, applied bool) *zerolog.Event {
	outcome := metrics.OutcomeApplied
	if !applied {
		outcome = metrics.OutcomeIgnored
	}
	s.Metrics.Mutation(op, outcome)

	return s.log(ctx).Debug().Str("op", op).Str("outcome", outcome)
}

func (s *DashboardService) log(ctx context.Context) *zerolog.Logger {
	l := logger.FromContext(ctx, s.Logger)
	return &l
}
