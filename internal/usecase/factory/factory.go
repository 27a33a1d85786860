package factory

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/bankdash-backend/internal/domain"
)

// Defaults applied when optional input fields are omitted
const (
	DefaultCurrency  = "EUR"
	DefaultDate      = domain.DateToday
	DefaultStatus    = domain.StatusCompleted
	DefaultDirection = domain.DirectionOutgoing

	idLength = 9
)

// NewTransactionInput represents the input for creating a transaction
// Recipient and Amount are required to submit; every other field is optional.
type NewTransactionInput struct {
	Recipient string                   `json:"recipient" validate:"required"`
	Amount    decimal.Decimal          `json:"amount" validate:"ne=0"`
	Currency  string                   `json:"currency,omitempty" validate:"omitempty,len=3"`
	Date      string                   `json:"date,omitempty"`
	Status    domain.TransactionStatus `json:"status,omitempty" validate:"omitempty,oneof=Completed Pending Cancelled"`
	Direction domain.Direction         `json:"direction,omitempty" validate:"omitempty,oneof=incoming outgoing"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Validate decimals by their numeric value
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Validate reports whether the input is valid to submit
// Build itself never validates; callers check this first.
func (in NewTransactionInput) Validate() error {
	return validate.Struct(in)
}

// IDGenerator produces transaction IDs
type IDGenerator func() string

// NewID returns a random 9 character lower-case alphanumeric token
// Uniqueness is probabilistic; collisions are not checked against existing IDs.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:idLength]
}

// Factory builds well-formed transactions from partial input
type Factory struct {
	newID IDGenerator
}

// NewFactory creates a new Factory. A nil generator falls back to NewID.
func NewFactory(newID IDGenerator) *Factory {
	if newID == nil {
		newID = NewID
	}
	return &Factory{newID: newID}
}

// Build constructs a transaction from the input
// Logic:
//   - Description: "Payment" for outgoing, "Income" otherwise
//   - IconType: "income" for incoming, "shopping" otherwise
//   - Omitted currency, date, status, direction take their defaults
//   - A fresh ID is generated
func (f *Factory) Build(input NewTransactionInput) domain.Transaction {
	direction := input.Direction
	if direction == "" {
		direction = DefaultDirection
	}

	currency := input.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	date := input.Date
	if date == "" {
		date = DefaultDate
	}

	status := input.Status
	if status == "" {
		status = DefaultStatus
	}

	description := "Income"
	if direction == domain.DirectionOutgoing {
		description = "Payment"
	}

	iconType := domain.IconShopping
	if direction == domain.DirectionIncoming {
		iconType = domain.IconIncome
	}

	return domain.Transaction{
		ID:          f.newID(),
		Recipient:   input.Recipient,
		Description: description,
		Amount:      input.Amount,
		Currency:    currency,
		Date:        date,
		Status:      status,
		Direction:   direction,
		IconType:    iconType,
	}
}

// Build constructs a transaction with random IDs
func Build(input NewTransactionInput) domain.Transaction {
	return defaultFactory.Build(input)
}

var defaultFactory = NewFactory(NewID)
