// Package dashboard aggregates transactions for one month: totals, balance,
// income and expense share of the total flow, and the fixed expenses already
// paid in that month.
package dashboard

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adrianAraqueG/gaston/internal/core"
)

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the Spanish name of month 1..12, or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

type Period struct {
	Year  int
	Month int
}

func CurrentPeriod(now time.Time) Period {
	return Period{Year: now.Year(), Month: int(now.Month())}
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 || p.Year < 1 {
		return fmt.Errorf("%w: %d-%02d", core.ErrInvalidPeriod, p.Year, p.Month)
	}
	return nil
}

// Label is "<Mes> <año>", e.g. "Marzo 2024".
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", MonthName(p.Month), p.Year)
}

func (p Period) Contains(tx core.Transaction) bool {
	return tx.Year == p.Year && tx.Month == p.Month
}

type Summary struct {
	Period Period
	// Transactions holds both types for the period, newest first.
	Transactions []core.Transaction
	Incomes      []core.Transaction
	Expenses     []core.Transaction

	TotalIncome  core.Money
	TotalExpense core.Money
	Balance      core.Money
	Count        int

	// Shares are percentages of income+expense; both are 0 when there is no flow.
	IncomeShare  float64
	ExpenseShare float64
	// MaxMetric is max(income, expense, 1), the scale for the bar chart.
	MaxMetric core.Money

	PaidFixedExpenses map[int64]bool
}

// Summarize builds the summary for p from the full expense and income lists.
func Summarize(expenses, incomes []core.Transaction, p Period) Summary {
	all := make([]core.Transaction, 0, len(expenses)+len(incomes))
	all = append(all, expenses...)
	all = append(all, incomes...)
	core.SortNewestFirst(all)

	s := Summary{
		Period:            p,
		Transactions:      Filter(all, p),
		TotalIncome:       core.NewMoney(0),
		TotalExpense:      core.NewMoney(0),
		PaidFixedExpenses: PaidFixedExpenseIDs(expenses, p),
	}
	for _, tx := range s.Transactions {
		switch tx.Type {
		case core.Income:
			s.Incomes = append(s.Incomes, tx)
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case core.Expense:
			s.Expenses = append(s.Expenses, tx)
			s.TotalExpense = s.TotalExpense.Add(tx.Amount)
		}
	}
	s.Count = len(s.Transactions)
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	flow := s.TotalIncome.Add(s.TotalExpense)
	if flow.IsPositive() {
		hundred := decimal.NewFromInt(100)
		s.IncomeShare = s.TotalIncome.Div(flow.Decimal).Mul(hundred).InexactFloat64()
		s.ExpenseShare = s.TotalExpense.Div(flow.Decimal).Mul(hundred).InexactFloat64()
	}
	s.MaxMetric = core.MoneyFromDecimal(decimal.Max(s.TotalIncome.Decimal, s.TotalExpense.Decimal, decimal.NewFromInt(1)))
	return s
}

// Filter keeps the transactions that belong to p, preserving order.
func Filter(txs []core.Transaction, p Period) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if p.Contains(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// PaidFixedExpenseIDs is the set of fixed expenses with a linked expense in p.
func PaidFixedExpenseIDs(expenses []core.Transaction, p Period) map[int64]bool {
	paid := map[int64]bool{}
	for _, tx := range expenses {
		if tx.Type == core.Expense && tx.FixedExpenseID != nil && p.Contains(tx) {
			paid[*tx.FixedExpenseID] = true
		}
	}
	return paid
}

// Years lists every year with transactions plus currentYear, newest first.
func Years(txs []core.Transaction, currentYear int) []int {
	years := []int{currentYear}
	for _, tx := range txs {
		if !slices.Contains(years, tx.Year) {
			years = append(years, tx.Year)
		}
	}
	slices.SortFunc(years, func(a, b int) int { return b - a })
	return years
}

// BarWidth scales v against scale to at most width cells.
func BarWidth(v, scale core.Money, width int) int {
	if !scale.IsPositive() || width <= 0 {
		return 0
	}
	n := v.Div(scale.Decimal).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart()
	return int(min(max(n, 0), int64(width)))
}
