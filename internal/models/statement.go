package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine represents a single booked entry of a bank statement.
type StatementLine struct {
	Amount   decimal.Decimal `json:"amount"` // negative for debits
	Payee    string          `json:"payee,omitempty"`
	Date     time.Time       `json:"date"`     // value date
	DateUser time.Time       `json:"dateUser"` // booking date
	Refnum   string          `json:"refnum,omitempty"`
	Memo     string          `json:"memo,omitempty"`
}

// IsDebit reports whether the line takes money out of the account.
func (l StatementLine) IsDebit() bool {
	return l.Amount.IsNegative()
}

// DebugLine captures what the parser did with each entry node.
type DebugLine struct {
	Index  int    `json:"index"`
	Result string `json:"result"` // "parsed" or "skipped"
	Reason string `json:"reason,omitempty"`
}

// Statement holds account metadata, balances and lines of one statement.
type Statement struct {
	BankID       string          `json:"bankId,omitempty"`
	AccountID    string          `json:"accountId"`
	Currency     string          `json:"currency,omitempty"`
	StartBalance decimal.Decimal `json:"startBalance"`
	StartDate    time.Time       `json:"startDate"`
	EndBalance   decimal.Decimal `json:"endBalance"`
	EndDate      time.Time       `json:"endDate"`
	Lines        []StatementLine `json:"lines"`
	DebugLines   []DebugLine     `json:"-"`
}

// Totals returns the sum of credit amounts and the absolute sum of debit amounts.
func (s *Statement) Totals() (credit, debit decimal.Decimal) {
	for _, l := range s.Lines {
		if l.IsDebit() {
			debit = debit.Add(l.Amount.Neg())
		} else {
			credit = credit.Add(l.Amount)
		}
	}
	return credit, debit
}
