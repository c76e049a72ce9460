package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/contracts-service/internal/model"
)

func TestGenerateWritesSummaryAndRows(t *testing.T) {
	now := time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)
	report := model.ContractsReport{
		GeneratedAt: now,
		Rows: []model.ContractReportRow{
			{
				Contract: model.Contract{
					Name:         "acme.com Domain",
					CustomerName: "ACME Corporation",
					Type:         model.ContractTypeDomain,
					StartDate:    now.AddDate(-1, 0, 0),
					EndDate:      now.AddDate(0, 0, 4),
					RenewalDate:  now.AddDate(0, 0, 2),
					Amount:       decimal.RequireFromString("100.5"),
					Status:       model.ContractStatusActive,
				},
				DisplayStatus: "expiring-soon",
				Urgency:       "high",
				DaysRemaining: 4,
			},
		},
		ActiveCount:      1,
		ExpiringCount:    1,
		TotalActiveValue: decimal.RequireFromString("100.5"),
	}

	content, err := NewGenerator().Generate(report)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{summarySheet, contractsSheet}, file.GetSheetList())

	scope, err := file.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "All customers", scope)

	value, err := file.GetCellValue(summarySheet, "B8")
	require.NoError(t, err)
	assert.Equal(t, "100.50", value)

	name, err := file.GetCellValue(contractsSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "acme.com Domain", name)

	display, err := file.GetCellValue(contractsSheet, "I2")
	require.NoError(t, err)
	assert.Equal(t, "expiring-soon (high)", display)

	end, err := file.GetCellValue(contractsSheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", end)
}
