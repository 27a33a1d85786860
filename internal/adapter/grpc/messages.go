package grpc

import (
	"fmt"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/bankdash-backend/internal/domain"
	"github.com/simaogato/bankdash-backend/internal/usecase/factory"
)

// Amounts travel as decimal strings, the same way they are stored.

// domainAccountToMap converts a domain Account to its wire representation
func domainAccountToMap(acc domain.Account) map[string]interface{} {
	return map[string]interface{}{
		"id":               acc.ID,
		"currency":         acc.Currency,
		"balance":          acc.Balance.StringFixed(2),
		"formattedBalance": acc.FormattedBalance(),
		"flag":             acc.Flag,
		"accountNumber":    acc.AccountNumber,
	}
}

// domainTransactionToMap converts a domain Transaction to its wire representation
func domainTransactionToMap(tx domain.Transaction) map[string]interface{} {
	return map[string]interface{}{
		"id":              tx.ID,
		"recipient":       tx.Recipient,
		"description":     tx.Description,
		"amount":          tx.Amount.String(),
		"formattedAmount": tx.FormattedAmount(),
		"signedAmount":    tx.SignedAmount().String(),
		"currency":        tx.Currency,
		"date":            tx.Date,
		"status":          string(tx.Status),
		"direction":       string(tx.Direction),
		"iconType":        string(tx.IconType),
	}
}

// domainProfileToMap converts a domain UserProfile to its wire representation
func domainProfileToMap(p domain.UserProfile) map[string]interface{} {
	return map[string]interface{}{
		"name":             p.Name,
		"username":         p.Username,
		"avatarUrl":        p.AvatarURL,
		"membershipNumber": p.MembershipNumber,
		"displayName":      p.DisplayName(),
	}
}

func accountsToList(accounts []domain.Account) []interface{} {
	list := make([]interface{}, 0, len(accounts))
	for _, acc := range accounts {
		list = append(list, domainAccountToMap(acc))
	}
	return list
}

func transactionsToList(txs []domain.Transaction) []interface{} {
	list := make([]interface{}, 0, len(txs))
	for _, tx := range txs {
		list = append(list, domainTransactionToMap(tx))
	}
	return list
}

// mapToTransaction converts a wire transaction to a domain Transaction
func mapToTransaction(s *structpb.Struct) (domain.Transaction, error) {
	amount, _, err := decimalField(s, "amount")
	if err != nil {
		return domain.Transaction{}, err
	}

	return domain.Transaction{
		ID:          stringField(s, "id"),
		Recipient:   stringField(s, "recipient"),
		Description: stringField(s, "description"),
		Amount:      amount,
		Currency:    stringField(s, "currency"),
		Date:        stringField(s, "date"),
		Status:      domain.TransactionStatus(stringField(s, "status")),
		Direction:   domain.Direction(stringField(s, "direction")),
		IconType:    domain.IconType(stringField(s, "iconType")),
	}, nil
}

// mapToTransactionInput converts a wire request to factory input
func mapToTransactionInput(s *structpb.Struct) (factory.NewTransactionInput, error) {
	amount, _, err := decimalField(s, "amount")
	if err != nil {
		return factory.NewTransactionInput{}, err
	}

	return factory.NewTransactionInput{
		Recipient: stringField(s, "recipient"),
		Amount:    amount,
		Currency:  stringField(s, "currency"),
		Date:      stringField(s, "date"),
		Status:    domain.TransactionStatus(stringField(s, "status")),
		Direction: domain.Direction(stringField(s, "direction")),
	}, nil
}

func stringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

func structField(s *structpb.Struct, key string) *structpb.Struct {
	return s.GetFields()[key].GetStructValue()
}

// decimalField reads a decimal given either as a string or as a number
// A missing field yields zero and present == false.
func decimalField(s *structpb.Struct, key string) (value decimal.Decimal, present bool, err error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return decimal.Zero, false, nil
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(kind.StringValue)
		if err != nil {
			return decimal.Zero, true, fmt.Errorf("invalid %s format: %w", key, err)
		}
		return d, true, nil
	case *structpb.Value_NumberValue:
		return decimal.NewFromFloat(kind.NumberValue), true, nil
	case *structpb.Value_NullValue:
		return decimal.Zero, false, nil
	default:
		return decimal.Zero, true, fmt.Errorf("invalid %s format: expected string or number", key)
	}
}

func intField(s *structpb.Struct, key string, fallback int) int {
	v, ok := s.GetFields()[key]
	if !ok {
		return fallback
	}
	if n, ok := v.GetKind().(*structpb.Value_NumberValue); ok {
		return int(n.NumberValue)
	}
	return fallback
}

// newStruct builds a response message, panicking only on programmer error
// (values that structpb cannot represent).
func newStruct(fields map[string]interface{}) *structpb.Struct {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		panic(fmt.Sprintf("grpc: unrepresentable response: %v", err))
	}
	return s
}
