package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportData is the JSON payload stored with a financial report.
// @Description Aggregated report data, shape depends on the report type
// swaggertype: object
// additionalProperties: true
type ReportData map[string]interface{}

// NewReportData converts a typed report into its stored JSON form.
func NewReportData(report interface{}) (ReportData, error) {
	bytes, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report data: %w", err)
	}
	var data ReportData
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("failed to decode report data: %w", err)
	}
	return data, nil
}

// Decode unmarshals the payload into one of the typed report structs.
func (m ReportData) Decode(into interface{}) error {
	bytes, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, into)
}

// Value implements driver.Valuer interface
func (m ReportData) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *ReportData) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ReportData", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	var tmp map[string]interface{}
	if err := json.Unmarshal(bytes, &tmp); err != nil {
		return err
	}
	*m = ReportData(tmp)
	return nil
}

// IncomeStatementSummary holds the headline income statement totals
type IncomeStatementSummary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// IncomeStatement partitions a window's transactions into income and expenses
type IncomeStatement struct {
	Summary             IncomeStatementSummary     `json:"summary"`
	IncomeByCategory    map[string]decimal.Decimal `json:"incomeByCategory"`
	ExpensesByCategory  map[string]decimal.Decimal `json:"expensesByCategory"`
	IncomeTransactions  int                        `json:"incomeTransactions"`
	ExpenseTransactions int                        `json:"expenseTransactions"`
}

// BalanceSheetAccount is one account line on a balance sheet
type BalanceSheetAccount struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// BalanceSheetAssets sums account balances overall and per account type
type BalanceSheetAssets struct {
	Total    decimal.Decimal            `json:"total"`
	ByType   map[string]decimal.Decimal `json:"byType"`
	Accounts []BalanceSheetAccount      `json:"accounts"`
}

// BalanceSheetTotal is a section reported only as a total
type BalanceSheetTotal struct {
	Total decimal.Decimal `json:"total"`
}

// BalanceSheet is a snapshot of all account balances.
// Liabilities are always zero and equity equals total assets.
type BalanceSheet struct {
	Date        time.Time          `json:"date"`
	Assets      BalanceSheetAssets `json:"assets"`
	Liabilities BalanceSheetTotal  `json:"liabilities"`
	Equity      BalanceSheetTotal  `json:"equity"`
}

// CashFlowPeriod is the window a cash flow report covers
type CashFlowPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CashFlowSummary holds the window totals
type CashFlowSummary struct {
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
	NetCashFlow decimal.Decimal `json:"netCashFlow"`
}

// CashFlowMonth holds the totals of one YYYY-MM bucket
type CashFlowMonth struct {
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Net     decimal.Decimal `json:"net"`
}

// CashFlow buckets a window's transactions by calendar month
type CashFlow struct {
	Period           CashFlowPeriod           `json:"period"`
	Summary          CashFlowSummary          `json:"summary"`
	ByMonth          map[string]CashFlowMonth `json:"byMonth"`
	TransactionCount int                      `json:"transactionCount"`
}
