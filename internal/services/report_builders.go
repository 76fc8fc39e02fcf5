package services

import (
	"time"

	"smb-accounting/internal/models"

	"github.com/shopspring/decimal"
)

// BuildIncomeStatement partitions transactions into income and expenses and
// sums each side overall and per category.
func BuildIncomeStatement(transactions []models.Transaction) models.IncomeStatement {
	statement := models.IncomeStatement{
		Summary: models.IncomeStatementSummary{
			TotalIncome:   decimal.Zero,
			TotalExpenses: decimal.Zero,
		},
		IncomeByCategory:   map[string]decimal.Decimal{},
		ExpensesByCategory: map[string]decimal.Decimal{},
	}

	for i := range transactions {
		t := &transactions[i]
		category := t.CategoryOrDefault()

		switch t.Type {
		case models.TransactionTypeIncome:
			statement.Summary.TotalIncome = statement.Summary.TotalIncome.Add(t.Amount)
			statement.IncomeByCategory[category] = statement.IncomeByCategory[category].Add(t.Amount)
			statement.IncomeTransactions++
		case models.TransactionTypeExpense:
			statement.Summary.TotalExpenses = statement.Summary.TotalExpenses.Add(t.Amount)
			statement.ExpensesByCategory[category] = statement.ExpensesByCategory[category].Add(t.Amount)
			statement.ExpenseTransactions++
		}
	}

	statement.Summary.NetIncome = statement.Summary.TotalIncome.Sub(statement.Summary.TotalExpenses)
	return statement
}

// BuildBalanceSheet snapshots every account balance as of date.
// Liabilities are always zero and equity equals total assets.
func BuildBalanceSheet(accounts []models.Account, date time.Time) models.BalanceSheet {
	sheet := models.BalanceSheet{
		Date: date.UTC(),
		Assets: models.BalanceSheetAssets{
			Total:    decimal.Zero,
			ByType:   map[string]decimal.Decimal{},
			Accounts: make([]models.BalanceSheetAccount, 0, len(accounts)),
		},
		Liabilities: models.BalanceSheetTotal{Total: decimal.Zero},
	}

	for i := range accounts {
		a := &accounts[i]
		sheet.Assets.Total = sheet.Assets.Total.Add(a.Balance)
		sheet.Assets.ByType[a.AccountType] = sheet.Assets.ByType[a.AccountType].Add(a.Balance)
		sheet.Assets.Accounts = append(sheet.Assets.Accounts, models.BalanceSheetAccount{
			ID:       a.ID,
			Name:     a.Name,
			Type:     a.AccountType,
			Balance:  a.Balance,
			Currency: a.Currency,
		})
	}

	sheet.Equity = models.BalanceSheetTotal{Total: sheet.Assets.Total}
	return sheet
}

// BuildCashFlow sums inflow and outflow over the window and per calendar month.
// Months are keyed YYYY-MM in UTC.
func BuildCashFlow(transactions []models.Transaction, start, end time.Time) models.CashFlow {
	flow := models.CashFlow{
		Period: models.CashFlowPeriod{Start: start.UTC(), End: end.UTC()},
		Summary: models.CashFlowSummary{
			Inflow:  decimal.Zero,
			Outflow: decimal.Zero,
		},
		ByMonth:          map[string]models.CashFlowMonth{},
		TransactionCount: len(transactions),
	}

	for i := range transactions {
		t := &transactions[i]
		key := t.Date.UTC().Format("2006-01")

		month, ok := flow.ByMonth[key]
		if !ok {
			month = models.CashFlowMonth{Inflow: decimal.Zero, Outflow: decimal.Zero}
		}

		switch t.Type {
		case models.TransactionTypeIncome:
			flow.Summary.Inflow = flow.Summary.Inflow.Add(t.Amount)
			month.Inflow = month.Inflow.Add(t.Amount)
		case models.TransactionTypeExpense:
			flow.Summary.Outflow = flow.Summary.Outflow.Add(t.Amount)
			month.Outflow = month.Outflow.Add(t.Amount)
		}
		month.Net = month.Inflow.Sub(month.Outflow)
		flow.ByMonth[key] = month
	}

	flow.Summary.NetCashFlow = flow.Summary.Inflow.Sub(flow.Summary.Outflow)
	return flow
}

var hundred = decimal.NewFromInt(100)

// BuildBudgetReport compares a budget with the expenses counted against it.
// PercentageUsed is rounded to two places and is zero for a zero budget.
func BuildBudgetReport(budget models.Budget, expenses []models.Transaction) models.BudgetReport {
	report := models.BudgetReport{
		Budget:           budget,
		TotalSpent:       decimal.Zero,
		PercentageUsed:   decimal.Zero,
		TransactionCount: len(expenses),
	}

	for i := range expenses {
		report.TotalSpent = report.TotalSpent.Add(expenses[i].Amount)
	}

	report.Remaining = budget.Amount.Sub(report.TotalSpent)
	if budget.Amount.IsPositive() {
		report.PercentageUsed = report.TotalSpent.Div(budget.Amount).Mul(hundred).Round(2)
	}
	return report
}
