package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() Transaction {
	return Transaction{
		ID:          "t1",
		Recipient:   "Albert Heijn",
		Description: "Groceries",
		Amount:      decimal.RequireFromString("42.15"),
		Currency:    "EUR",
		Date:        DateToday,
		Status:      StatusCompleted,
		Direction:   DirectionOutgoing,
		IconType:    IconShopping,
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(tx *Transaction)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Well-formed transaction should pass",
			mutate:  func(tx *Transaction) {},
			wantErr: false,
		},
		{
			name:    "Zero amount should pass",
			mutate:  func(tx *Transaction) { tx.Amount = decimal.Zero },
			wantErr: false,
		},
		{
			name:    "Free-form date label should pass",
			mutate:  func(tx *Transaction) { tx.Date = "12 March" },
			wantErr: false,
		},
		{
			name:    "Empty ID should fail",
			mutate:  func(tx *Transaction) { tx.ID = "" },
			wantErr: true,
			errMsg:  "transaction ID cannot be empty",
		},
		{
			name:    "Negative amount should fail",
			mutate:  func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-1) },
			wantErr: true,
			errMsg:  "must not be negative",
		},
		{
			name:    "Missing currency should fail",
			mutate:  func(tx *Transaction) { tx.Currency = "" },
			wantErr: true,
			errMsg:  "currency",
		},
		{
			name:    "Unknown status should fail",
			mutate:  func(tx *Transaction) { tx.Status = "Lost" },
			wantErr: true,
			errMsg:  "status",
		},
		{
			name:    "Unknown direction should fail",
			mutate:  func(tx *Transaction) { tx.Direction = "sideways" },
			wantErr: true,
			errMsg:  "direction",
		},
		{
			name:    "Unknown icon type should fail",
			mutate:  func(tx *Transaction) { tx.IconType = "rocket" },
			wantErr: true,
			errMsg:  "icon type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	tx := validTransaction()
	assert.Equal(t, "-42.15", tx.SignedAmount().String())

	tx.Direction = DirectionIncoming
	assert.Equal(t, "42.15", tx.SignedAmount().String())
}

func TestTransaction_FormattedAmount(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		direction Direction
		want      string
	}{
		{name: "Outgoing", amount: "42.15", direction: DirectionOutgoing, want: "-42.15"},
		{name: "Incoming with grouping", amount: "1250", direction: DirectionIncoming, want: "+1,250.00"},
		{name: "Large outgoing", amount: "12086.34", direction: DirectionOutgoing, want: "-12,086.34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tx.Amount = decimal.RequireFromString(tt.amount)
			tx.Direction = tt.direction

			assert.Equal(t, tt.want, tx.FormattedAmount())
		})
	}
}

func TestTransaction_IsPending(t *testing.T) {
	tx := validTransaction()
	assert.False(t, tx.IsPending())

	tx.Status = StatusPending
	assert.True(t, tx.IsPending())
}

func TestTransaction_Normalized(t *testing.T) {
	tx := validTransaction()
	tx.Direction = DirectionIncoming
	tx.Amount = decimal.RequireFromString("-7.50")

	n := tx.Normalized()

	assert.Equal(t, "7.5", n.Amount.String())
	assert.Equal(t, DirectionOutgoing, n.Direction)
	assert.NoError(t, n.Validate())
	// the receiver is untouched
	assert.True(t, tx.Amount.IsNegative())

	positive := validTransaction()
	assert.Equal(t, positive, positive.Normalized())
}
