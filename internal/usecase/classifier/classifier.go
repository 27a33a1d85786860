package classifier

import (
	"github.com/simaogato/bankdash-backend/internal/domain"
)

// Buckets holds the four disjoint groupings of an account's transactions
// Each slice preserves the relative order of the input.
type Buckets struct {
	Pending   []domain.Transaction
	Today     []domain.Transaction
	Yesterday []domain.Transaction
	Earlier   []domain.Transaction
}

// Bucket names a grouping
type Bucket string

const (
	BucketNone      Bucket = ""
	BucketPending   Bucket = "pending"
	BucketToday     Bucket = "today"
	BucketYesterday Bucket = "yesterday"
	BucketEarlier   Bucket = "earlier"
)

// Classify partitions transactions of the given currency into buckets
// Logic:
//  1. Skip transactions whose currency differs from the target
//  2. Pending status wins over the date label
//  3. Otherwise bucket by the "Today" / "Yesterday" labels, everything else is earlier
//
// An empty input or an unmatched currency yields four empty, non-nil slices.
func Classify(transactions []domain.Transaction, currency string) Buckets {
	buckets := Buckets{
		Pending:   []domain.Transaction{},
		Today:     []domain.Transaction{},
		Yesterday: []domain.Transaction{},
		Earlier:   []domain.Transaction{},
	}

	for _, tx := range transactions {
		switch BucketOf(tx, currency) {
		case BucketPending:
			buckets.Pending = append(buckets.Pending, tx)
		case BucketToday:
			buckets.Today = append(buckets.Today, tx)
		case BucketYesterday:
			buckets.Yesterday = append(buckets.Yesterday, tx)
		case BucketEarlier:
			buckets.Earlier = append(buckets.Earlier, tx)
		}
	}

	return buckets
}

// BucketOf returns the bucket a single transaction falls into for the currency,
// or BucketNone when it does not belong to that account's view
func BucketOf(tx domain.Transaction, currency string) Bucket {
	if tx.Currency != currency {
		return BucketNone
	}

	if tx.IsPending() {
		return BucketPending
	}

	switch tx.Date {
	case domain.DateToday:
		return BucketToday
	case domain.DateYesterday:
		return BucketYesterday
	default:
		return BucketEarlier
	}
}

// Len returns the total number of transactions across all buckets
func (b Buckets) Len() int {
	return len(b.Pending) + len(b.Today) + len(b.Yesterday) + len(b.Earlier)
}
