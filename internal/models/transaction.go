package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial event recorded by a user. Amount is in
// minor currency units (cents). Date is the user-supplied calendar date of
// the event; CreatedAt orders listings (newest first).
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Category    Category        `gorm:"not null" json:"category"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Description string          `gorm:"not null" json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`
}
