package core

import "github.com/shopspring/decimal"

// Summary is the running totals view over the flat-list ledger.
type Summary struct {
	TotalQuantity decimal.Decimal
	TotalAmount   decimal.Decimal
	TotalDue      decimal.Decimal
}

// MonthSummary aggregates the displayed month of the calendar ledger.
// Absent days contribute zero.
type MonthSummary struct {
	Month         MonthKey
	MorningQty    decimal.Decimal
	EveningQty    decimal.Decimal
	TotalQuantity decimal.Decimal
	TotalAmount   decimal.Decimal
	TotalPaid     decimal.Decimal
	TotalDue      decimal.Decimal
}
