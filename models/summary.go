package models

import "github.com/shopspring/decimal"

// RecentTransactionsLimit is the number of newest transactions included in
// UserSummary.RecentTransactions.
const RecentTransactionsLimit = 8

// UserSummary is the dashboard view of a single user: profile, balance,
// aggregated totals and transaction history (newest first).
type UserSummary struct {
	User               UserProfile     `json:"user"`
	Balance            decimal.Decimal `json:"balance"`
	Income             decimal.Decimal `json:"income"`
	Expense            decimal.Decimal `json:"expense"`
	RecentTransactions []Transaction   `json:"recentTransactions"`
	Transactions       []Transaction   `json:"transactions"`
}
