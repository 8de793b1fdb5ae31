package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianAraqueG/gaston/internal/core"
)

func tx(id int64, typ core.TransactionType, amount int64, year, month, day int) core.Transaction {
	return core.Transaction{
		ID:         id,
		Type:       typ,
		Amount:     core.NewMoney(amount),
		Year:       year,
		Month:      month,
		OccurredAt: time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC),
	}
}

func TestSummarize(t *testing.T) {
	fixed := int64(3)
	paid := tx(4, core.Expense, 500, 2024, 3, 20)
	paid.FixedExpenseID = &fixed
	oldPaid := tx(5, core.Expense, 500, 2024, 2, 20)
	other := int64(8)
	oldPaid.FixedExpenseID = &other

	expenses := []core.Transaction{
		tx(1, core.Expense, 1000, 2024, 3, 1),
		tx(2, core.Expense, 2000, 2024, 4, 1),
		paid,
		oldPaid,
	}
	incomes := []core.Transaction{tx(3, core.Income, 4500, 2024, 3, 10)}

	s := Summarize(expenses, incomes, Period{Year: 2024, Month: 3})

	var ids []int64
	for _, got := range s.Transactions {
		ids = append(ids, got.ID)
	}
	assert.Equal(t, []int64{4, 3, 1}, ids, "period only, newest first")
	assert.Equal(t, 3, s.Count)
	assert.Len(t, s.Incomes, 1)
	assert.Len(t, s.Expenses, 2)
	assert.Equal(t, "4500", s.TotalIncome.String())
	assert.Equal(t, "1500", s.TotalExpense.String())
	assert.Equal(t, "3000", s.Balance.String())
	assert.InDelta(t, 75.0, s.IncomeShare, 1e-9)
	assert.InDelta(t, 25.0, s.ExpenseShare, 1e-9)
	assert.Equal(t, "4500", s.MaxMetric.String())
	assert.Equal(t, map[int64]bool{3: true}, s.PaidFixedExpenses)
}

func TestSummarize_EmptyPeriod(t *testing.T) {
	s := Summarize(nil, nil, Period{Year: 2030, Month: 1})
	assert.Zero(t, s.Count)
	assert.Zero(t, s.IncomeShare)
	assert.Zero(t, s.ExpenseShare)
	assert.Equal(t, "0", s.Balance.String())
	assert.Equal(t, "1", s.MaxMetric.String())
	assert.Empty(t, s.PaidFixedExpenses)
}

func TestFilter(t *testing.T) {
	march := tx(1, core.Expense, 10, 2024, 3, 1)
	april := tx(2, core.Expense, 10, 2024, 4, 1)
	got := Filter([]core.Transaction{march, april}, Period{Year: 2024, Month: 3})
	assert.Equal(t, []core.Transaction{march}, got)
}

func TestYears(t *testing.T) {
	txs := []core.Transaction{
		tx(1, core.Expense, 1, 2022, 1, 1),
		tx(2, core.Income, 1, 2024, 1, 1),
		tx(3, core.Expense, 1, 2022, 5, 1),
	}
	assert.Equal(t, []int{2026, 2024, 2022}, Years(txs, 2026))
	assert.Equal(t, []int{2024}, Years(nil, 2024))
	assert.Equal(t, []int{2024, 2022}, Years(txs, 2024))
}

func TestPeriod(t *testing.T) {
	p := CurrentPeriod(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Period{Year: 2024, Month: 3}, p)
	assert.Equal(t, "Marzo 2024", p.Label())
	assert.Equal(t, "Diciembre", MonthName(12))
	assert.Equal(t, "", MonthName(13))

	require.NoError(t, p.Validate())
	assert.True(t, errors.Is(Period{Year: 2024, Month: 13}.Validate(), core.ErrInvalidPeriod))
	assert.True(t, errors.Is(Period{Year: 0, Month: 1}.Validate(), core.ErrInvalidPeriod))
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, 20, BarWidth(core.NewMoney(100), core.NewMoney(100), 20))
	assert.Equal(t, 10, BarWidth(core.NewMoney(50), core.NewMoney(100), 20))
	assert.Equal(t, 0, BarWidth(core.NewMoney(0), core.NewMoney(1), 20))
	assert.Equal(t, 0, BarWidth(core.NewMoney(5), core.NewMoney(0), 20))
}
