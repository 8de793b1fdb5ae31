package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/core"
	"github.com/adrianAraqueG/gaston/internal/dashboard"
	"github.com/adrianAraqueG/gaston/internal/format"
	"github.com/adrianAraqueG/gaston/internal/store"
)

func (a *App) newTransactions() *store.Transactions {
	return store.NewTransactions(a.api.Transactions, a.storeOpts...)
}

func (a *App) newFixedExpenses(dependents ...store.Refresher) *store.FixedExpenses {
	return store.NewFixedExpenses(a.api.FixedExpenses, dependents, a.storeOpts...)
}

func (a *App) periodFlags(name string, args []string) (dashboard.Period, []string, error) {
	now := dashboard.CurrentPeriod(a.now())
	fs := a.flagSet(name)
	year := fs.Int("year", now.Year, "año")
	month := fs.Int("month", now.Month, "mes (1-12)")
	if err := fs.Parse(args); err != nil {
		return dashboard.Period{}, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	p := dashboard.Period{Year: *year, Month: *month}
	return p, fs.Args(), p.Validate()
}

// loadAll refreshes every loader concurrently and returns their errors in
// order.
func loadAll(ctx context.Context, loaders ...store.Refresher) []error {
	errs := make([]error, len(loaders))
	var g errgroup.Group
	for i, l := range loaders {
		g.Go(func() error {
			errs[i] = l.Refresh(ctx)
			return nil
		})
	}
	_ = g.Wait()
	return errs
}

// readErrors shows a banner per failed load. A 401 anywhere replaces the
// page with the login notice; the caller must stop rendering then.
func (a *App) readErrors(errs ...error) (stop bool, shown error) {
	for _, err := range errs {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			return true, a.readFailed(err)
		}
	}
	for _, err := range errs {
		if err != nil {
			shown = a.readFailed(err)
		}
	}
	return false, shown
}

func (a *App) dashboard(ctx context.Context, args []string) error {
	p, _, err := a.periodFlags("dashboard", args)
	if err != nil {
		if errors.Is(err, ErrUsage) {
			return err
		}
		return a.formFailed(err)
	}

	txs := a.newTransactions()
	fixed := a.newFixedExpenses(txs)
	errs := loadAll(ctx, txs, fixed)
	stop, shown := a.readErrors(errs...)
	if stop {
		return shown
	}

	s := dashboard.Summarize(txs.Expenses(), txs.Incomes(), p)
	a.title("Resumen de " + p.Label())

	a.table([]string{"", "Monto", "", "%"}, [][]string{
		{"Ingresos", format.Currency(s.TotalIncome), a.bar(s.TotalIncome, s.MaxMetric, a.ui.income), format.Percent(s.IncomeShare)},
		{"Gastos", format.Currency(s.TotalExpense), a.bar(s.TotalExpense, s.MaxMetric, a.ui.expense), format.Percent(s.ExpenseShare)},
		{"Balance", format.Currency(s.Balance), "", ""},
		{"Movimientos", strconv.Itoa(s.Count), "", ""},
	})

	years := dashboard.Years(txs.All(), a.now().Year())
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y)
	}
	fmt.Fprintln(a.out, a.ui.muted.Render("Años: "+strings.Join(labels, ", ")))

	a.section("Transacciones")
	a.transactionTable(s.Transactions)

	a.section("Gastos fijos")
	a.fixedExpenseTable(fixed.Items(), s.PaidFixedExpenses)

	return shown
}

func (a *App) transactionTable(txs []core.Transaction) {
	if len(txs) == 0 {
		a.empty("No hay transacciones en este periodo.")
		return
	}
	rows := make([][]string, len(txs))
	for i, tx := range txs {
		amount := format.Currency(tx.Amount)
		if tx.IsExpense() {
			amount = a.ui.expense.Render("-" + amount)
		} else {
			amount = a.ui.income.Render("+" + amount)
		}
		rows[i] = []string{
			strconv.FormatInt(tx.ID, 10),
			format.Date(tx.OccurredAt),
			typeLabel(tx.Type),
			tx.Description,
			categoryName(tx.Category),
			pocketName(tx.Pocket),
			amount,
		}
	}
	a.table([]string{"ID", "Fecha", "Tipo", "Descripción", "Categoría", "Bolsillo", "Monto"}, rows)
}

func (a *App) fixedExpenseTable(items []core.FixedExpense, paid map[int64]bool) {
	if len(items) == 0 {
		a.empty("No hay gastos fijos.")
		return
	}
	rows := make([][]string, len(items))
	for i, fe := range items {
		status := a.ui.notice.Render("Pendiente")
		if paid[fe.ID] {
			status = a.ui.success.Render("Pagado")
		}
		rows[i] = []string{
			strconv.FormatInt(fe.ID, 10),
			fe.Name,
			categoryName(fe.Category),
			format.Currency(fe.DefaultAmount),
			status,
		}
	}
	a.table([]string{"ID", "Nombre", "Categoría", "Monto", "Estado"}, rows)
}
