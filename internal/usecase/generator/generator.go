package generator

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/simaogato/bankdash-backend/internal/domain"
	"github.com/simaogato/bankdash-backend/internal/usecase/factory"
)

const (
	minAmount        = 1
	maxAmount        = 500
	incomingPercent  = 20
	pendingPercent   = 10
	todayPercent     = 50
	yesterdayPercent = 30
)

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Generator produces realistic-looking transaction inputs for demo sessions
// Not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator creates a new Generator. A zero seed picks a random one.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Next returns a synthetic input that is always valid to submit
// Logic:
//   - ~20% incoming from a person, otherwise outgoing to a company
//   - ~10% pending
//   - ~50% "Today", ~30% "Yesterday", remaining days as "2 Jan" labels
//
// Currency is left empty so the factory default or the active account applies.
func (g *Generator) Next() factory.NewTransactionInput {
	f := g.faker

	direction := domain.DirectionOutgoing
	recipient := f.Company()
	if f.Number(1, 100) <= incomingPercent {
		direction = domain.DirectionIncoming
		recipient = f.Name()
	}

	status := domain.StatusCompleted
	if f.Number(1, 100) <= pendingPercent {
		status = domain.StatusPending
	}

	amount := decimal.NewFromFloat(f.Price(minAmount, maxAmount)).Round(2)
	if amount.IsZero() {
		amount = decimal.NewFromInt(minAmount)
	}

	return factory.NewTransactionInput{
		Recipient: recipient,
		Amount:    amount,
		Date:      g.dateLabel(),
		Status:    status,
		Direction: direction,
	}
}

// Batch returns n inputs
func (g *Generator) Batch(n int) []factory.NewTransactionInput {
	inputs := make([]factory.NewTransactionInput, 0, n)
	for i := 0; i < n; i++ {
		inputs = append(inputs, g.Next())
	}
	return inputs
}

func (g *Generator) dateLabel() string {
	roll := g.faker.Number(1, 100)
	switch {
	case roll <= todayPercent:
		return domain.DateToday
	case roll <= todayPercent+yesterdayPercent:
		return domain.DateYesterday
	default:
		return fmt.Sprintf("%d %s", g.faker.Number(1, 28), g.faker.RandomString(months))
	}
}
