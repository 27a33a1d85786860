package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ibanPrefix is the fixed bank part of every demo IBAN
const ibanPrefix = "BE50 9673 0136 "

// Account represents a currency balance held by the user.
// Currency is the join key to transactions; the view layer assumes one account per currency.
type Account struct {
	ID            string
	Currency      string
	Balance       decimal.Decimal
	Flag          string // display only
	AccountNumber string // masked, e.g. ".. 64818"
}

// Validate ensures the account adheres to domain rules
func (a *Account) Validate() error {
	if a.ID == "" {
		return errors.New("account ID cannot be empty")
	}

	if len(a.Currency) != 3 {
		return errors.New("account currency must be a 3-letter code")
	}

	return nil
}

// IBAN returns the full IBAN shown on the account details page
func (a *Account) IBAN() string {
	return ibanPrefix + strings.Replace(a.AccountNumber, ".. ", "", 1)
}

// FormattedBalance renders the balance with two fractional digits and thousands separators
func (a *Account) FormattedBalance() string {
	return FormatMoney(a.Balance)
}

// FormatMoney renders an amount with two fractional digits and comma grouping.
// Negative values keep their sign: -1234.5 -> "-1,234.50".
func FormatMoney(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() && !d.Round(2).IsZero() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}
