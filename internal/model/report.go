package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractReportRow struct {
	Contract      Contract
	DisplayStatus string
	Urgency       string
	DaysRemaining int
}

// ContractsReport is the input of the spreadsheet export.
type ContractsReport struct {
	GeneratedAt      time.Time
	CustomerName     string // empty when the export covers every customer
	Rows             []ContractReportRow
	ActiveCount      int
	ExpiredCount     int
	PendingCount     int
	ExpiringCount    int
	TotalActiveValue decimal.Decimal
}

type RenewalReportRow struct {
	Contract         Contract
	DaysUntilRenewal int
	Urgency          string
}

// RenewalsReport lists the contracts whose renewal falls inside the window.
type RenewalsReport struct {
	GeneratedAt time.Time
	WindowDays  int
	Rows        []RenewalReportRow
	Total       decimal.Decimal
}
