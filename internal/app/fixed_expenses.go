package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/adrianAraqueG/gaston/internal/core"
	"github.com/adrianAraqueG/gaston/internal/dashboard"
)

func (a *App) fixedExpenses(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "list", "create", "update", "delete", "pay")
	if err != nil {
		return err
	}

	switch verb {
	case "create":
		fs := a.flagSet("fixed-expenses create")
		name := fs.String("name", "", "nombre")
		var amount moneyValue
		var category idValue
		fs.Var(&amount, "amount", "monto por defecto")
		fs.Var(&category, "category", "id de categoría")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		req := core.CreateFixedExpense{Name: *name, CategoryID: category.v}
		if amount.v != nil {
			req.DefaultAmount = *amount.v
		}
		fe, err := a.newFixedExpenses().Create(ctx, req)
		if err != nil {
			return a.formFailed(err)
		}
		a.success(fmt.Sprintf("Gasto fijo %q creado (#%d)", fe.Name, fe.ID))
		return nil

	case "update":
		id, rest, err := idArg(rest)
		if err != nil {
			return err
		}
		fs := a.flagSet("fixed-expenses update")
		var name stringValue
		var amount moneyValue
		var category idValue
		fs.Var(&name, "name", "nombre")
		fs.Var(&amount, "amount", "monto por defecto")
		fs.Var(&category, "category", "id de categoría")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		fe, err := a.newFixedExpenses().Update(ctx, id, core.UpdateFixedExpense{Name: name.v, DefaultAmount: amount.v, CategoryID: category.v})
		if err != nil {
			return a.formFailed(err)
		}
		a.success(fmt.Sprintf("Gasto fijo %q actualizado", fe.Name))
		return nil

	case "delete":
		id, _, err := idArg(rest)
		if err != nil {
			return err
		}
		if err := a.newFixedExpenses().Remove(ctx, id); err != nil {
			return a.formFailed(err)
		}
		a.success(fmt.Sprintf("Gasto fijo #%d eliminado", id))
		return nil

	case "pay":
		return a.payFixedExpense(ctx, rest)
	}

	p, _, err := a.periodFlags("fixed-expenses list", rest)
	if err != nil {
		if errors.Is(err, ErrUsage) {
			return err
		}
		return a.formFailed(err)
	}
	txs := a.newTransactions()
	fixed := a.newFixedExpenses(txs)
	errs := loadAll(ctx, fixed, txs)
	stop, shown := a.readErrors(errs...)
	if stop || errs[0] != nil {
		return shown
	}

	// Without transactions every item shows as pending.
	a.title("Gastos fijos de " + p.Label())
	a.fixedExpenseTable(fixed.Items(), dashboard.PaidFixedExpenseIDs(txs.Expenses(), p))
	return shown
}

func (a *App) payFixedExpense(ctx context.Context, args []string) error {
	id, rest, err := idArg(args)
	if err != nil {
		return err
	}
	fs := a.flagSet("fixed-expenses pay")
	var amount moneyValue
	var date dateValue
	fs.Var(&amount, "amount", "monto pagado (por defecto el monto fijo)")
	fs.Var(&date, "date", "fecha AAAA-MM-DD")
	if err := fs.Parse(rest); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	txs := a.newTransactions()
	fixed := a.newFixedExpenses(txs)
	if err := fixed.Pay(ctx, id, core.PayFixedExpense{Amount: amount.v, OccurredAt: date.v}); err != nil {
		return a.formFailed(err)
	}

	name := fmt.Sprintf("#%d", id)
	if fe, ok := fixed.Find(id); ok {
		name = fmt.Sprintf("%q", fe.Name)
	}
	a.success(fmt.Sprintf("Pago de %s registrado", name))
	return nil
}
