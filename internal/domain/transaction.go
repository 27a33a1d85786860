package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the settlement state of a transaction
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "Completed"
	StatusPending   TransactionStatus = "Pending"
	StatusCancelled TransactionStatus = "Cancelled"
)

// Direction represents whether money enters or leaves an account
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// IconType is a display hint for the transaction row
type IconType string

const (
	IconTransfer IconType = "transfer"
	IconShopping IconType = "shopping"
	IconIncome   IconType = "income"
	IconGeneral  IconType = "general"
)

// Date labels with grouping semantics. Any other label is a free display string.
const (
	DateToday     = "Today"
	DateYesterday = "Yesterday"
)

// Transaction represents a single row of the activity feed.
// Amount is always a magnitude; the sign is derived from Direction.
type Transaction struct {
	ID          string
	Recipient   string
	Description string
	Amount      decimal.Decimal
	Currency    string
	Date        string
	Status      TransactionStatus
	Direction   Direction
	IconType    IconType
}

// Validate ensures the transaction adheres to domain rules
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return errors.New("transaction ID cannot be empty")
	}

	if t.Amount.IsNegative() {
		return errors.New("transaction amount must not be negative")
	}

	if len(t.Currency) != 3 {
		return errors.New("transaction currency must be a 3-letter code")
	}

	switch t.Status {
	case StatusCompleted, StatusPending, StatusCancelled:
	default:
		return errors.New("transaction status must be Completed, Pending or Cancelled")
	}

	if !t.Direction.Valid() {
		return errors.New("transaction direction must be incoming or outgoing")
	}

	switch t.IconType {
	case IconTransfer, IconShopping, IconIncome, IconGeneral:
	default:
		return errors.New("transaction icon type must be transfer, shopping, income or general")
	}

	return nil
}

// Normalized returns the transaction with its amount as a magnitude
// A negative amount means money left the account: it becomes an outgoing absolute value.
func (t Transaction) Normalized() Transaction {
	if t.Amount.IsNegative() {
		t.Amount = t.Amount.Abs()
		t.Direction = DirectionOutgoing
	}
	return t
}

// IsPending reports whether the transaction is still pending
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// SignedAmount returns the amount with the sign implied by the direction
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionOutgoing {
		return t.Amount.Neg()
	}
	return t.Amount
}

// FormattedAmount renders the amount the way the activity feed shows it: "-42.15", "+1,250.00"
func (t *Transaction) FormattedAmount() string {
	sign := "+"
	if t.Direction == DirectionOutgoing {
		sign = "-"
	}
	return sign + FormatMoney(t.Amount)
}

// Valid reports whether d is a known direction
func (d Direction) Valid() bool {
	return d == DirectionIncoming || d == DirectionOutgoing
}
