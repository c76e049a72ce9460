package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/contracts-service/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(report model.RenewalsReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Upcoming contract renewals", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Next %d days from %s", report.WindowDays, formatDate(report.GeneratedAt)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Contract", "Customer", "Type", "Renewal date", "End date", "Days", "Amount"}
	colWidths := []float64{70, 60, 25, 30, 30, 20, 32}
	drawTableRow(pdf, g.fontName, headers, colWidths, true, nil)

	if len(report.Rows) == 0 {
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 8, fmt.Sprintf("No upcoming renewals in the next %d days", report.WindowDays), "1", 1, "C", false, 0, "")
	}

	for _, row := range report.Rows {
		c := row.Contract
		cols := []string{
			tr(c.Name),
			tr(safeValue(c.CustomerName)),
			string(c.Type),
			formatDate(c.RenewalDate),
			formatDate(c.EndDate),
			fmt.Sprintf("%d", row.DaysUntilRenewal),
			c.Amount.StringFixed(2),
		}
		drawTableRow(pdf, g.fontName, cols, colWidths, false, urgencyColor(row.Urgency))
	}

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total value due for renewal: %s", report.Total.StringFixed(2)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool, color []int) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	if color != nil {
		pdf.SetTextColor(color[0], color[1], color[2])
	}
	for i, col := range cols {
		align := "L"
		if i > 4 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(-1)
}

func urgencyColor(urgency string) []int {
	switch urgency {
	case "high":
		return []int{200, 0, 0}
	case "medium":
		return []int{180, 110, 0}
	default:
		return nil
	}
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}
