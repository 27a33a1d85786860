package coercion

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind classifies an editable field
type Kind int

const (
	// KindText fields keep the raw text verbatim
	KindText Kind = iota
	// KindAmount fields accept digits, '.' and '-'
	KindAmount
	// KindBalance fields accept digits and '.' only
	KindBalance
)

// Editable field names with numeric semantics
const (
	FieldAmount  = "amount"
	FieldBalance = "balance"
)

// EditValue is the typed result of coercing raw edit text
type EditValue struct {
	Kind   Kind
	Number decimal.Decimal // set for KindAmount and KindBalance
	Text   string          // set for KindText
}

// IsNumeric reports whether the value carries a number
func (v EditValue) IsNumeric() bool {
	return v.Kind == KindAmount || v.Kind == KindBalance
}

// FieldKind returns how a field's raw text is coerced
func FieldKind(field string) Kind {
	switch field {
	case FieldAmount:
		return KindAmount
	case FieldBalance:
		return KindBalance
	default:
		return KindText
	}
}

// CoerceEdit translates raw user-entered text into a typed field value
// Logic:
//   - amount: keep digits, '.', '-'; parse the longest numeric prefix; malformed -> 0
//   - balance: keep digits and '.'; parse the longest numeric prefix; malformed -> 0
//   - anything else: the raw text, untouched (no trimming)
//
// It never fails: every numeric field receives a number.
func CoerceEdit(field, raw string) EditValue {
	switch kind := FieldKind(field); kind {
	case KindAmount:
		return EditValue{Kind: kind, Number: ParseNumber(keep(raw, "0123456789.-"))}
	case KindBalance:
		return EditValue{Kind: kind, Number: ParseNumber(keep(raw, "0123456789."))}
	default:
		return EditValue{Kind: KindText, Text: raw}
	}
}

// ParseNumber parses the longest leading decimal number of s, in the manner of a
// browser parseFloat: "12.5.3" -> 12.5, "7-1" -> 7, "-.5" -> -0.5.
// Empty or malformed input yields zero.
func ParseNumber(s string) decimal.Decimal {
	i := 0
	negative := false
	if i < len(s) && s[i] == '-' {
		negative = true
		i++
	}

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := s[intStart:i]

	var fracDigits string
	if i < len(s) && s[i] == '.' {
		fracStart := i + 1
		j := fracStart
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracDigits = s[fracStart:j]
	}

	if intDigits == "" && fracDigits == "" {
		return decimal.Zero
	}
	if intDigits == "" {
		intDigits = "0"
	}

	canonical := intDigits
	if fracDigits != "" {
		canonical += "." + fracDigits
	}
	if negative {
		canonical = "-" + canonical
	}

	d, err := decimal.NewFromString(canonical)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// keep drops every byte of s that is not in allowed
func keep(s, allowed string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(allowed, s[i]) >= 0 {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
