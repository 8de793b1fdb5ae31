package app

import (
	"context"
	"fmt"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/log"
)

func normalize(err error, fallback string) error {
	return apiclient.Normalize(err, fallback)
}

func (a *App) export(ctx context.Context, _ []string) error {
	a.logger.InfoContext(ctx, "Exporting transactions", log.FieldOperation, log.OpExport)
	f, err := a.api.Transactions.Export(ctx)
	if err != nil {
		return a.formFailed(normalize(err, "Error al exportar"))
	}
	loc, err := a.sink.Save(ctx, f)
	if err != nil {
		return a.formFailed(fmt.Errorf("no se pudo guardar la exportación: %w", err))
	}
	a.success("Exportado a " + loc)
	return nil
}

func (a *App) landing(_ context.Context, _ []string) error {
	a.title("Gastón")
	fmt.Fprintln(a.out, "Tus finanzas personales, claras y en un solo lugar.")
	fmt.Fprintln(a.out, "Registra gastos e ingresos, organiza tus bolsillos y revisa tu mes de un vistazo.")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.ui.muted.Render("Ejecuta: gaston login"))
	return nil
}
