package dashboard

import (
	"context"
	"strings"

	"github.com/simaogato/bankdash-backend/internal/domain"
	"github.com/simaogato/bankdash-backend/internal/usecase/coercion"
	"github.com/simaogato/bankdash-backend/internal/usecase/factory"
)

type editModeKey struct{}

// WithEditMode returns a context carrying the presentation layer's edit-mode toggle
func WithEditMode(ctx context.Context, on bool) context.Context {
	return context.WithValue(ctx, editModeKey{}, on)
}

// EditModeFromContext reports whether edit mode is on. It is off unless set.
func EditModeFromContext(ctx context.Context) bool {
	on, _ := ctx.Value(editModeKey{}).(bool)
	return on
}

// ParseEditMode interprets a transport edit-mode toggle
// Edit mode is on for "on", "true" or "1"; anything else is off.
func ParseEditMode(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}

// EditBalance commits inline-edited balance text for an account
// The text is coerced (digits and '.' only, malformed -> 0) before reaching the store.
// It is a no-op while edit mode is off.
func (s *DashboardService) EditBalance(ctx context.Context, accountID, raw string) {
	if !s.editing(ctx, OpEditBalance) {
		return
	}

	value := coercion.CoerceEdit(coercion.FieldBalance, raw)
	s.UpdateBalance(ctx, accountID, value.Number)
}

// EditTransactionField commits inline-edited text for one field of a transaction
// Logic:
//  1. Coerce the raw text for the field (non-editable fields -> no-op)
//  2. Apply it to the stored record in a single store update (unknown ID -> no-op)
//
// Editable fields are recipient, description, date and amount.
func (s *DashboardService) EditTransactionField(ctx context.Context, transactionID, field, raw string) {
	if !s.editing(ctx, OpEditTransaction) {
		return
	}

	value := coercion.CoerceEdit(field, raw)
	var apply func(tx *domain.Transaction)
	switch field {
	case FieldRecipient:
		apply = func(tx *domain.Transaction) { tx.Recipient = value.Text }
	case FieldDescription:
		apply = func(tx *domain.Transaction) { tx.Description = value.Text }
	case FieldDate:
		apply = func(tx *domain.Transaction) { tx.Date = value.Text }
	case FieldAmount:
		apply = func(tx *domain.Transaction) {
			tx.Amount = value.Number
			*tx = tx.Normalized()
		}
	default:
		s.record(ctx, OpEditTransaction, false).
			Str("field", field).
			Msg("field not editable")
		return
	}

	applied := s.TransactionRepo.Update(ctx, transactionID, apply)
	s.record(ctx, OpEditTransaction, applied).
		Str("transaction_id", transactionID).
		Str("field", field).
		Msg("transaction edit")
}

// EditProfileField commits inline-edited text for a profile field, verbatim
func (s *DashboardService) EditProfileField(ctx context.Context, field domain.ProfileField, raw string) {
	if !s.editing(ctx, OpEditProfile) {
		return
	}

	value := coercion.CoerceEdit(string(field), raw)
	s.UpdateProfileField(ctx, field, value.Text)
}

// SubmitTransaction builds a transaction from operator input and adds it
// Input that is not valid to submit (empty recipient or zero amount) is ignored.
// The returned flag reports whether a transaction was added.
func (s *DashboardService) SubmitTransaction(ctx context.Context, input factory.NewTransactionInput, activeAccountID string) (domain.Transaction, bool) {
	if err := input.Validate(); err != nil {
		s.record(ctx, OpSubmitTransaction, false).
			Err(err).
			Msg("transaction input rejected")
		return domain.Transaction{}, false
	}

	tx := s.Factory.Build(input)
	return s.AddTransaction(ctx, tx, activeAccountID), true
}

// InjectTransactions adds n synthetic transactions and returns them, oldest first
func (s *DashboardService) InjectTransactions(ctx context.Context, n int, activeAccountID string) []domain.Transaction {
	s.genMu.Lock()
	inputs := s.Generator.Batch(n)
	s.genMu.Unlock()

	added := make([]domain.Transaction, 0, len(inputs))
	for _, input := range inputs {
		if tx, ok := s.SubmitTransaction(ctx, input, activeAccountID); ok {
			added = append(added, tx)
		}
	}

	s.log(ctx).Info().
		Int("count", len(added)).
		Str("active_account_id", activeAccountID).
		Msg("synthetic transactions injected")

	return added
}

func (s *DashboardService) editing(ctx context.Context, op string) bool {
	if EditModeFromContext(ctx) {
		return true
	}
	s.record(ctx, op, false).Msg("edit mode is off")
	return false
}
