package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nurpe/contracts-service/internal/lifecycle"
	"github.com/nurpe/contracts-service/internal/model"
)

type ContractsExporter interface {
	Generate(report model.ContractsReport) ([]byte, error)
}

type RenewalsRenderer interface {
	Generate(report model.RenewalsReport) ([]byte, error)
}

type ReportService struct {
	store      Store
	excel      ContractsExporter
	pdf        RenewalsRenderer
	now        Clock
	windowDays int
}

type FileResult struct {
	FileName string
	Content  []byte
}

func NewReportService(store Store, excel ContractsExporter, pdf RenewalsRenderer, now Clock, windowDays int) *ReportService {
	if windowDays <= 0 {
		windowDays = lifecycle.DefaultWindowDays
	}
	return &ReportService{
		store:      store,
		excel:      excel,
		pdf:        pdf,
		now:        now,
		windowDays: windowDays,
	}
}

// ExportContracts renders the contract register as a workbook. A non-empty
// customerID limits the export to that customer.
func (s *ReportService) ExportContracts(ctx context.Context, customerID string) (*FileResult, error) {
	var (
		contracts    []model.Contract
		customerName string
	)
	customerID = strings.TrimSpace(customerID)
	if customerID != "" {
		customer, err := s.store.GetCustomer(ctx, customerID)
		if err != nil {
			return nil, mapStoreError(err)
		}
		customerName = customer.Name
		contracts, err = s.store.ListContractsByCustomer(ctx, customerID)
		if err != nil {
			return nil, err
		}
		for i := range contracts {
			contracts[i].CustomerName = customer.Name
		}
	} else {
		snapshot, err := loadSnapshot(ctx, s.store)
		if err != nil {
			return nil, err
		}
		contracts = snapshot.contracts
		resolveCustomerNames(contracts, snapshot.customers)
	}

	now := s.now()
	rows := make([]model.ContractReportRow, 0, len(contracts))
	for _, c := range contracts {
		cls, err := lifecycle.Classify(c, now)
		if err != nil {
			return nil, fmt.Errorf("classify contract %s: %w", c.ID, err)
		}
		rows = append(rows, model.ContractReportRow{
			Contract:      c,
			DisplayStatus: string(cls.Status),
			Urgency:       string(cls.Urgency),
			DaysRemaining: cls.DaysRemaining,
		})
	}

	counts := lifecycle.CountContracts(contracts)
	report := model.ContractsReport{
		GeneratedAt:      now,
		CustomerName:     customerName,
		Rows:             rows,
		ActiveCount:      counts.Active,
		ExpiredCount:     counts.Expired,
		PendingCount:     counts.Pending,
		ExpiringCount:    lifecycle.CountExpiringSoon(contracts, now, s.windowDays),
		TotalActiveValue: lifecycle.TotalActiveValue(contracts),
	}

	content, err := s.excel.Generate(report)
	if err != nil {
		return nil, err
	}
	return &FileResult{FileName: buildContractsFileName(report), Content: content}, nil
}

// RenewalReport renders upcoming renewals inside the configured window as a PDF.
func (s *ReportService) RenewalReport(ctx context.Context) (*FileResult, error) {
	snapshot, err := loadSnapshot(ctx, s.store)
	if err != nil {
		return nil, err
	}
	resolveCustomerNames(snapshot.contracts, snapshot.customers)

	now := s.now()
	upcoming := lifecycle.UpcomingRenewals(snapshot.contracts, now, s.windowDays)
	rows := make([]model.RenewalReportRow, 0, len(upcoming))
	total := decimal.Zero
	for _, c := range upcoming {
		rows = append(rows, model.RenewalReportRow{
			Contract:         c,
			DaysUntilRenewal: lifecycle.DaysBetween(now, c.RenewalDate),
			Urgency:          string(lifecycle.RenewalUrgency(c, now)),
		})
		total = total.Add(c.Amount)
	}

	report := model.RenewalsReport{
		GeneratedAt: now,
		WindowDays:  s.windowDays,
		Rows:        rows,
		Total:       total,
	}
	content, err := s.pdf.Generate(report)
	if err != nil {
		return nil, err
	}
	fileName := fmt.Sprintf("renewals-%s-%dd.pdf", now.Format("20060102"), s.windowDays)
	return &FileResult{FileName: fileName, Content: content}, nil
}

func buildContractsFileName(report model.ContractsReport) string {
	date := report.GeneratedAt.Format("20060102")
	customer := sanitizeFileName(report.CustomerName)
	if customer == "" {
		return fmt.Sprintf("contracts-%s.xlsx", date)
	}
	return fmt.Sprintf("contracts-%s-%s.xlsx", strings.ToLower(customer), date)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
