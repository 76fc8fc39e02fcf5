package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportData_RoundTripsTypedReport(t *testing.T) {
	statement := IncomeStatement{
		Summary: IncomeStatementSummary{
			TotalIncome:   decimal.NewFromInt(500),
			TotalExpenses: decimal.NewFromInt(200),
			NetIncome:     decimal.NewFromInt(300),
		},
		IncomeByCategory:    map[string]decimal.Decimal{"Sales": decimal.NewFromInt(500)},
		ExpensesByCategory:  map[string]decimal.Decimal{"Rent": decimal.NewFromInt(200)},
		IncomeTransactions:  1,
		ExpenseTransactions: 1,
	}

	data, err := NewReportData(statement)
	require.NoError(t, err)
	assert.Contains(t, data, "summary")
	assert.Contains(t, data, "incomeByCategory")

	value, err := data.Value()
	require.NoError(t, err)

	var scanned ReportData
	require.NoError(t, scanned.Scan(value))

	var decoded IncomeStatement
	require.NoError(t, scanned.Decode(&decoded))
	assert.True(t, decoded.Summary.NetIncome.Equal(decimal.NewFromInt(300)))
	assert.True(t, decoded.IncomeByCategory["Sales"].Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 1, decoded.ExpenseTransactions)
}

func TestReportData_ScanEdgeCases(t *testing.T) {
	var data ReportData

	require.NoError(t, data.Scan(nil))
	assert.Nil(t, data)

	require.NoError(t, data.Scan([]byte(`{"transactionCount":2}`)))
	assert.Equal(t, float64(2), data["transactionCount"])

	assert.Error(t, data.Scan(42))
}

func TestFinancialReport_Validate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	valid := FinancialReport{Name: "January", Type: ReportTypeCashFlow, Period: ReportPeriodMonthly, StartDate: start, EndDate: end}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.Type = "PROFIT_AND_LOSS"
	assert.ErrorIs(t, badType.Validate(), ErrInvalidReportType)

	badWindow := valid
	badWindow.StartDate, badWindow.EndDate = end, start
	assert.ErrorIs(t, badWindow.Validate(), ErrInvalidReportWindow)

	badPeriod := valid
	badPeriod.Period = "WEEKLY"
	assert.ErrorIs(t, badPeriod.Validate(), ErrInvalidReportPeriod)
}
