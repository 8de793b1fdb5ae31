package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adrianAraqueG/gaston/internal/core"
	"github.com/adrianAraqueG/gaston/internal/store"
)

func (a *App) categories(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "list", "create", "update", "delete")
	if err != nil {
		return err
	}

	switch verb {
	case "create":
		fs := a.flagSet("categories create")
		name := fs.String("name", "", "nombre")
		typ := &typeValue{v: core.Expense}
		fs.Var(typ, "type", "expense|income")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		c, err := a.newCategories("").Create(ctx, core.CreateCategory{Name: *name, Type: typ.v})
		if err != nil {
			return a.formFailed(err)
		}
		a.success(fmt.Sprintf("Categoría %q creada (#%d)", c.Name, c.ID))
		return nil

	case "update":
		id, rest, err := idArg(rest)
		if err != nil {
			return err
		}
		fs := a.flagSet("categories update")
		var name stringValue
		var active boolValue
		var typ typeValue
		fs.Var(&name, "name", "nombre")
		fs.Var(&typ, "type", "expense|income")
		fs.Var(&active, "active", "activa")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		req := core.UpdateCategory{Name: name.v, IsActive: active.v}
		if typ.v != "" {
			req.Type = &typ.v
		}
		c, err := a.newCategories("").Update(ctx, id, req)
		if err != nil {
			return a.formFailed(err)
		}
		a.success(fmt.Sprintf("Categoría %q actualizada", c.Name))
		return nil

	case "delete":
		id, _, err := idArg(rest)
		if err != nil {
			return err
		}
		if err := a.newCategories("").Delete(ctx, id); err != nil {
			return a.formFailed(err)
		}
		a.success(fmt.Sprintf("Categoría #%d eliminada", id))
		return nil
	}

	fs := a.flagSet("categories list")
	var typ typeValue
	fs.Var(&typ, "type", "expense|income")
	if err := fs.Parse(rest); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	cats := a.newCategories(typ.v)
	if err := cats.Refresh(ctx); err != nil {
		return a.readFailed(err)
	}

	a.title("Categorías")
	items := cats.Items()
	if len(items) == 0 {
		a.empty("No hay categorías.")
		return nil
	}
	rows := make([][]string, len(items))
	for i, c := range items {
		rows[i] = []string{strconv.FormatInt(c.ID, 10), c.Name, typeLabel(c.Type), yesNo(c.IsActive), yesNo(c.IsDefault)}
	}
	a.table([]string{"ID", "Nombre", "Tipo", "Activa", "Por defecto"}, rows)
	return nil
}

func (a *App) newCategories(typ core.TransactionType) *store.Categories {
	return store.NewCategories(a.api.Categories, typ, a.storeOpts...)
}
