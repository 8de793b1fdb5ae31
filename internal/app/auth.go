package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adrianAraqueG/gaston/internal/format"
	"github.com/adrianAraqueG/gaston/internal/guard"
)

var errNoPrompt = errors.New("no interactive input available")

func (a *App) line(label string) (string, error) {
	if a.prompt == nil {
		return "", errNoPrompt
	}
	s, err := a.prompt.Line(label)
	return strings.TrimSpace(s), err
}

func (a *App) secret(label string) (string, error) {
	if a.prompt == nil {
		return "", errNoPrompt
	}
	return a.prompt.Secret(label)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	email := fs.String("email", "", "correo electrónico")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	a.title("Iniciar sesión")
	if *email == "" {
		var err error
		if *email, err = a.line("Email: "); err != nil {
			return err
		}
	}
	password, err := a.secret("Contraseña: ")
	if err != nil {
		return err
	}

	// The login page itself never redirects on 401, so the error is
	// shown on the form like any other.
	if err := a.session.Login(ctx, strings.TrimSpace(*email), password); err != nil {
		fmt.Fprintln(a.out, a.ui.formError.Render(err.Error()))
		return &shownError{err: err}
	}

	snap := a.session.Snapshot()
	for _, to := range a.router.Redirects() {
		if to == guard.ChangePasswordPath {
			a.changePasswordNotice()
			return nil
		}
	}
	a.success(fmt.Sprintf("Bienvenido, %s", snap.User.Name))
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	err := a.session.Logout(ctx)
	a.router.Redirects()
	if a.jar != nil {
		if cerr := a.jar.Clear(ctx); cerr != nil {
			a.logger.WarnContext(ctx, "Failed to clear stored cookies", "error", cerr)
		}
	}
	if err != nil {
		return a.formFailed(err)
	}
	a.success("Sesión cerrada")
	return nil
}

func (a *App) whoami(_ context.Context, _ []string) error {
	user := a.session.Snapshot().User
	a.title(user.Name)
	a.table([]string{"Campo", "Valor"}, [][]string{
		{"ID", fmt.Sprint(user.ID)},
		{"Email", format.Optional(user.Email)},
		{"Teléfono", format.Optional(user.Phone)},
		{"Activo", yesNo(user.IsActive)},
		{"Cambio de contraseña pendiente", yesNo(user.MustChangePassword)},
		{"Creado", format.DateTime(user.CreatedAt)},
	})
	return nil
}

func (a *App) changePassword(ctx context.Context, _ []string) error {
	snap := a.session.Snapshot()
	a.title("Cambiar contraseña")
	if snap.MustChangePassword() {
		fmt.Fprintln(a.out, a.ui.notice.Render("Debes cambiar tu contraseña temporal para continuar."))
	}

	current, err := a.secret("Contraseña actual: ")
	if err != nil {
		return err
	}
	next, err := a.secret("Nueva contraseña: ")
	if err != nil {
		return err
	}
	confirm, err := a.secret("Confirmar contraseña: ")
	if err != nil {
		return err
	}

	if err := a.session.ChangePassword(ctx, current, next, confirm); err != nil {
		return a.formFailed(err)
	}
	a.success("Contraseña actualizada")
	return nil
}
