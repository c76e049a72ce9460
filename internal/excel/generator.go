package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/contracts-service/internal/model"
)

const (
	summarySheet   = "Summary"
	contractsSheet = "Contracts"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.ContractsReport) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet(contractsSheet); err != nil {
		return nil, err
	}
	if err := g.writeContracts(file, contractsSheet, report); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.ContractsReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	scope := report.CustomerName
	if scope == "" {
		scope = "All customers"
	}

	set("A1", "Generated at")
	set("B1", formatDateTime(report.GeneratedAt))
	set("A2", "Scope")
	set("B2", scope)
	set("A3", "Contracts")
	set("B3", len(report.Rows))
	set("A4", "Active")
	set("B4", report.ActiveCount)
	set("A5", "Expiring soon")
	set("B5", report.ExpiringCount)
	set("A6", "Expired")
	set("B6", report.ExpiredCount)
	set("A7", "Pending")
	set("B7", report.PendingCount)
	set("A8", "Active value")
	set("B8", report.TotalActiveValue.StringFixed(2))

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 28)
	return nil
}

func (g *Generator) writeContracts(file *excelize.File, sheet string, report model.ContractsReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Contract",
		"Customer",
		"Type",
		"Start",
		"End",
		"Renewal",
		"Amount",
		"Status",
		"Display status",
		"Days remaining",
		"Notes",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, row := range report.Rows {
		line := i + 2
		c := row.Contract
		set(fmt.Sprintf("A%d", line), c.Name)
		set(fmt.Sprintf("B%d", line), c.CustomerName)
		set(fmt.Sprintf("C%d", line), string(c.Type))
		set(fmt.Sprintf("D%d", line), formatDate(c.StartDate))
		set(fmt.Sprintf("E%d", line), formatDate(c.EndDate))
		set(fmt.Sprintf("F%d", line), formatDate(c.RenewalDate))
		set(fmt.Sprintf("G%d", line), c.Amount.StringFixed(2))
		set(fmt.Sprintf("H%d", line), string(c.Status))
		set(fmt.Sprintf("I%d", line), displayLabel(row))
		set(fmt.Sprintf("J%d", line), row.DaysRemaining)
		set(fmt.Sprintf("K%d", line), c.Notes)
	}

	_ = file.SetColWidth(sheet, "A", "B", 32)
	_ = file.SetColWidth(sheet, "C", "C", 12)
	_ = file.SetColWidth(sheet, "D", "F", 14)
	_ = file.SetColWidth(sheet, "G", "J", 16)
	_ = file.SetColWidth(sheet, "K", "K", 40)
	return nil
}

func displayLabel(row model.ContractReportRow) string {
	if row.Urgency == "" || row.Urgency == "none" {
		return row.DisplayStatus
	}
	return fmt.Sprintf("%s (%s)", row.DisplayStatus, row.Urgency)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
