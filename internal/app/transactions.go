package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adrianAraqueG/gaston/internal/core"
	"github.com/adrianAraqueG/gaston/internal/dashboard"
	"github.com/adrianAraqueG/gaston/internal/format"
)

func (a *App) transactions(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "list", "show", "create", "update", "delete")
	if err != nil {
		return err
	}

	switch verb {
	case "show":
		return a.showTransaction(ctx, rest)
	case "create":
		return a.createTransaction(ctx, rest)
	case "update":
		return a.updateTransaction(ctx, rest)
	case "delete":
		id, _, err := idArg(rest)
		if err != nil {
			return err
		}
		if err := a.newTransactions().Delete(ctx, id); err != nil {
			return a.formFailed(err)
		}
		a.success(fmt.Sprintf("Transacción #%d eliminada", id))
		return nil
	}

	fs := a.flagSet("transactions list")
	var typ typeValue
	fs.Var(&typ, "type", "expense|income")
	all := fs.Bool("all", false, "todos los periodos")
	now := dashboard.CurrentPeriod(a.now())
	year := fs.Int("year", now.Year, "año")
	month := fs.Int("month", now.Month, "mes (1-12)")
	if err := fs.Parse(rest); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	p := dashboard.Period{Year: *year, Month: *month}
	if !*all {
		if err := p.Validate(); err != nil {
			return a.formFailed(err)
		}
	}

	txs := a.newTransactions()
	if err := txs.Refresh(ctx); err != nil {
		return a.readFailed(err)
	}

	var items []core.Transaction
	switch typ.v {
	case core.Expense:
		items = txs.Expenses()
		core.SortNewestFirst(items)
	case core.Income:
		items = txs.Incomes()
		core.SortNewestFirst(items)
	default:
		items = txs.All()
	}
	if *all {
		a.title("Transacciones")
	} else {
		items = dashboard.Filter(items, p)
		a.title("Transacciones de " + p.Label())
	}
	a.transactionTable(items)
	return nil
}

func (a *App) showTransaction(ctx context.Context, args []string) error {
	id, _, err := idArg(args)
	if err != nil {
		return err
	}
	tx, err := a.api.Transactions.Get(ctx, id)
	if err != nil {
		return a.readFailed(normalize(err, "Error al cargar la transacción"))
	}

	a.title(fmt.Sprintf("%s #%d", typeLabel(tx.Type), tx.ID))
	rows := [][]string{
		{"Descripción", tx.Description},
		{"Monto", format.Currency(tx.Amount)},
		{"Fecha", format.DateTime(tx.OccurredAt)},
		{"Categoría", categoryName(tx.Category)},
		{"Bolsillo", pocketName(tx.Pocket)},
		{"Comprobante", format.Optional(a.client.ImageURL(tx.ImageURL))},
	}
	if tx.FixedExpenseID != nil {
		rows = append(rows, []string{"Gasto fijo", "#" + strconv.FormatInt(*tx.FixedExpenseID, 10)})
	}
	a.table([]string{"Campo", "Valor"}, rows)
	return nil
}

func (a *App) createTransaction(ctx context.Context, args []string) error {
	fs := a.flagSet("transactions create")
	typ := &typeValue{v: core.Expense}
	var amount moneyValue
	var category, pocket idValue
	var date dateValue
	fs.Var(typ, "type", "expense|income")
	fs.Var(&amount, "amount", "monto")
	description := fs.String("description", "", "descripción")
	fs.Var(&category, "category", "id de categoría")
	fs.Var(&pocket, "pocket", "id de bolsillo (solo gastos)")
	fs.Var(&date, "date", "fecha AAAA-MM-DD")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	req := core.CreateTransaction{
		Type:        typ.v,
		Description: *description,
		CategoryID:  category.v,
		PocketID:    pocket.v,
		OccurredAt:  date.v,
	}
	if amount.v != nil {
		req.Amount = *amount.v
	}
	tx, err := a.newTransactions().Create(ctx, req)
	if err != nil {
		return a.formFailed(err)
	}
	a.success(fmt.Sprintf("%s #%d registrado por %s", typeLabel(tx.Type), tx.ID, format.Currency(tx.Amount)))
	return nil
}

func (a *App) updateTransaction(ctx context.Context, args []string) error {
	id, rest, err := idArg(args)
	if err != nil {
		return err
	}
	fs := a.flagSet("transactions update")
	var amount moneyValue
	var description stringValue
	var category, pocket idValue
	var date dateValue
	fs.Var(&amount, "amount", "monto")
	fs.Var(&description, "description", "descripción")
	fs.Var(&category, "category", "id de categoría")
	fs.Var(&pocket, "pocket", "id de bolsillo")
	clearPocket := fs.Bool("no-pocket", false, "quitar el bolsillo")
	fs.Var(&date, "date", "fecha AAAA-MM-DD")
	if err := fs.Parse(rest); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// The current record decides which fields are allowed.
	txs := a.newTransactions()
	if err := txs.Refresh(ctx); err != nil {
		return a.readFailed(err)
	}
	tx, err := txs.Update(ctx, id, core.UpdateTransaction{
		Amount:      amount.v,
		Description: description.v,
		CategoryID:  category.v,
		PocketID:    pocket.v,
		ClearPocket: *clearPocket,
		OccurredAt:  date.v,
	})
	if err != nil {
		return a.formFailed(err)
	}
	a.success(fmt.Sprintf("Transacción #%d actualizada", tx.ID))
	return nil
}
