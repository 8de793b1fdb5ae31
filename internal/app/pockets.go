package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adrianAraqueG/gaston/internal/core"
	"github.com/adrianAraqueG/gaston/internal/format"
	"github.com/adrianAraqueG/gaston/internal/store"
)

func (a *App) pockets(ctx context.Context, args []string) error {
	verb, rest, err := subcommand(args, "list", "create", "update", "delete")
	if err != nil {
		return err
	}
	pockets := store.NewPockets(a.api.Pockets, a.storeOpts...)

	switch verb {
	case "create":
		fs := a.flagSet("pockets create")
		name := fs.String("name", "", "nombre")
		description := fs.String("description", "", "descripción")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		p, err := pockets.Create(ctx, core.CreatePocket{Name: *name, Description: core.OptionalText(*description)})
		if err != nil {
			return a.formFailed(err)
		}
		a.success(fmt.Sprintf("Bolsillo %q creado (#%d)", p.Name, p.ID))
		return nil

	case "update":
		id, rest, err := idArg(rest)
		if err != nil {
			return err
		}
		fs := a.flagSet("pockets update")
		var name, description stringValue
		var active boolValue
		fs.Var(&name, "name", "nombre")
		fs.Var(&description, "description", "descripción")
		fs.Var(&active, "active", "activo")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		p, err := pockets.Update(ctx, id, core.UpdatePocket{Name: name.v, Description: description.v, IsActive: active.v})
		if err != nil {
			return a.formFailed(err)
		}
		a.success(fmt.Sprintf("Bolsillo %q actualizado", p.Name))
		return nil

	case "delete":
		id, _, err := idArg(rest)
		if err != nil {
			return err
		}
		if err := pockets.Delete(ctx, id); err != nil {
			return a.formFailed(err)
		}
		a.success(fmt.Sprintf("Bolsillo #%d eliminado", id))
		return nil
	}

	if err := pockets.Refresh(ctx); err != nil {
		return a.readFailed(err)
	}
	a.title("Bolsillos")
	items := pockets.Items()
	if len(items) == 0 {
		a.empty("No hay bolsillos.")
		return nil
	}
	rows := make([][]string, len(items))
	for i, p := range items {
		rows[i] = []string{strconv.FormatInt(p.ID, 10), p.Name, format.Optional(&p.Description), yesNo(p.IsActive), yesNo(p.IsDefault)}
	}
	a.table([]string{"ID", "Nombre", "Descripción", "Activo", "Por defecto"}, rows)
	return nil
}
