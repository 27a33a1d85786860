package seeder

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/bankdash-backend/internal/adapter/repository/memory"
	"github.com/simaogato/bankdash-backend/internal/domain"
)

// Fixed IDs for the demo accounts
const (
	AccountEUR = "1"
	AccountUSD = "2"
	AccountGBP = "3"
	AccountTHB = "4"
)

// DemoSeeder builds the initial state of a demo session
type DemoSeeder struct {
	accounts     []domain.Account
	transactions []domain.Transaction
	profile      domain.UserProfile
}

// NewDemoSeeder creates a new DemoSeeder with the default demo data
func NewDemoSeeder() *DemoSeeder {
	return &DemoSeeder{
		accounts:     demoAccounts(),
		transactions: demoTransactions(),
		profile:      demoProfile(),
	}
}

// Seed validates the demo data and returns it as store fixtures
func (s *DemoSeeder) Seed() (memory.Fixtures, error) {
	for i := range s.accounts {
		if err := s.accounts[i].Validate(); err != nil {
			return memory.Fixtures{}, fmt.Errorf("demo account %s: %w", s.accounts[i].ID, err)
		}
	}

	for i := range s.transactions {
		if err := s.transactions[i].Validate(); err != nil {
			return memory.Fixtures{}, fmt.Errorf("demo transaction %s: %w", s.transactions[i].ID, err)
		}
	}

	return memory.Fixtures{
		Accounts:     append([]domain.Account(nil), s.accounts...),
		Transactions: append([]domain.Transaction(nil), s.transactions...),
		Profile:      s.profile,
	}, nil
}

func demoProfile() domain.UserProfile {
	return domain.UserProfile{
		Name:             "Maria Isabel Pérez Rodriguez",
		Username:         "@maria7889",
		AvatarURL:        "https://images.unsplash.com/photo-1470252649378-9c29740c9fa8?auto=format&fit=crop&w=200&h=200",
		MembershipNumber: "P38371203",
	}
}

func demoAccounts() []domain.Account {
	return []domain.Account{
		{ID: AccountEUR, Currency: "EUR", Balance: decimal.RequireFromString("14534.87"), Flag: "🇪🇺", AccountNumber: ".. 64818"},
		{ID: AccountUSD, Currency: "USD", Balance: decimal.Zero, Flag: "🇺🇸", AccountNumber: ".. 74161"},
		{ID: AccountGBP, Currency: "GBP", Balance: decimal.Zero, Flag: "🇬🇧", AccountNumber: ".. 99212"},
		{ID: AccountTHB, Currency: "THB", Balance: decimal.Zero, Flag: "🇹🇭", AccountNumber: ".. 11234"},
	}
}

// demoTransactions returns the feed, most recent first
func demoTransactions() []domain.Transaction {
	tx := func(id, recipient, description, amount, currency, date string, status domain.TransactionStatus, direction domain.Direction, icon domain.IconType) domain.Transaction {
		return domain.Transaction{
			ID:          id,
			Recipient:   recipient,
			Description: description,
			Amount:      decimal.RequireFromString(amount),
			Currency:    currency,
			Date:        date,
			Status:      status,
			Direction:   direction,
			IconType:    icon,
		}
	}

	const (
		in  = domain.DirectionIncoming
		out = domain.DirectionOutgoing
		ok  = domain.StatusCompleted
	)

	return []domain.Transaction{
		// Today
		tx("t1", "Shwe Sin Win", "Sending", "12086.34", "THB", domain.DateToday, ok, out, domain.IconTransfer),
		tx("t2", "To EUR", "Moved by you", "34.30", "EUR", domain.DateToday, ok, in, domain.IconTransfer),
		tx("t_today_1", "Albert Heijn", "Groceries", "42.15", "EUR", domain.DateToday, ok, out, domain.IconShopping),
		tx("t_today_2", "Uber BV", "Transport", "18.50", "EUR", domain.DateToday, ok, out, domain.IconShopping),
		tx("t_today_3", "Tikkie - Lunch", "Payment request", "12.50", "EUR", domain.DateToday, ok, out, domain.IconTransfer),
		tx("t_today_4", "Spotify AB", "Subscription", "10.99", "EUR", domain.DateYesterday, ok, out, domain.IconShopping),
		tx("t_today_5", "From Savings", "Top up", "250.00", "EUR", domain.DateToday, ok, in, domain.IconTransfer),

		// Yesterday
		tx("t3", "Iberojet", "Travel", "405.76", "EUR", domain.DateYesterday, domain.StatusPending, out, domain.IconShopping),
		tx("t_yest_1", "Starbucks Coffee", "Food & Drink", "5.75", "EUR", domain.DateYesterday, ok, out, domain.IconShopping),
		tx("t_yest_2", "Shell Station", "Fuel", "54.20", "EUR", domain.DateYesterday, ok, out, domain.IconShopping),
		tx("t_yest_3", "Bol.com", "Electronics", "129.99", "EUR", domain.DateYesterday, ok, out, domain.IconShopping),
		tx("t_yest_4", "H&M", "Clothing", "49.90", "EUR", domain.DateYesterday, ok, out, domain.IconShopping),
		tx("t_yest_5", "Ziggo BV", "Internet & TV", "67.50", "EUR", domain.DateYesterday, ok, out, domain.IconShopping),
		tx("t4", "Spotify AB", "Subscription", "10.99", "EUR", domain.DateYesterday, ok, out, domain.IconShopping),
		tx("t5", "Upwork Global Inc.", "Payout", "1250.00", "USD", domain.DateYesterday, ok, in, domain.IconIncome),
	}
}
