// Package app renders the terminal pages. Every command is a navigation:
// the session is resolved, the route guard decides, and the screen renders.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/export"
	"github.com/adrianAraqueG/gaston/internal/guard"
	"github.com/adrianAraqueG/gaston/internal/log"
	"github.com/adrianAraqueG/gaston/internal/services"
	"github.com/adrianAraqueG/gaston/internal/session"
	"github.com/adrianAraqueG/gaston/internal/store"
)

// Prompter reads interactive input.
type Prompter interface {
	Line(label string) (string, error)
	Secret(label string) (string, error)
}

// CookieClearer forgets the stored session cookie on logout.
type CookieClearer interface {
	Clear(ctx context.Context) error
}

type Options struct {
	Client    *apiclient.Client
	Router    *Router
	Sink      export.Sink
	Publisher store.Publisher
	Jar       CookieClearer
	Prompter  Prompter
	Logger    *log.Logger
	Out       io.Writer
	Now       func() time.Time
}

type App struct {
	client  *apiclient.Client
	api     *services.Services
	session *session.Manager
	router  *Router
	sink    export.Sink
	jar     CookieClearer
	prompt  Prompter
	logger  *log.Logger
	out     io.Writer
	now     func() time.Time
	ui      styles

	storeOpts []store.Option
}

func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.Nop()
	}
	if opts.Router == nil {
		opts.Router = NewRouter()
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sink == nil {
		opts.Sink = export.NewFileSink(".")
	}
	logger := opts.Logger.WithComponent(log.ComponentApp)

	opts.Client.SetNavigator(opts.Router)
	api := services.New(opts.Client)

	storeOpts := []store.Option{store.WithLogger(opts.Logger)}
	if opts.Publisher != nil {
		storeOpts = append(storeOpts, store.WithPublisher(opts.Publisher))
	}

	return &App{
		client:    opts.Client,
		api:       api,
		session:   session.NewManager(api.Auth, opts.Router, opts.Logger),
		router:    opts.Router,
		sink:      opts.Sink,
		jar:       opts.Jar,
		prompt:    opts.Prompter,
		logger:    logger,
		out:       opts.Out,
		now:       opts.Now,
		ui:        newStyles(opts.Out),
		storeOpts: storeOpts,
	}
}

type command struct {
	route string
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"login":           {route: guard.LoginPath, usage: "login [-email correo]", run: (*App).login},
		"logout":          {route: guard.DashboardPath, usage: "logout", run: (*App).logout},
		"whoami":          {route: guard.DashboardPath, usage: "whoami", run: (*App).whoami},
		"change-password": {route: guard.ChangePasswordPath, usage: "change-password", run: (*App).changePassword},
		"dashboard":       {route: guard.DashboardPath, usage: "dashboard [-year año] [-month mes]", run: (*App).dashboard},
		"categories":      {route: guard.CategoriesPath, usage: "categories list|create|update|delete", run: (*App).categories},
		"pockets":         {route: guard.PocketsPath, usage: "pockets list|create|update|delete", run: (*App).pockets},
		"transactions":    {route: guard.DashboardPath, usage: "transactions list|show|create|update|delete", run: (*App).transactions},
		"fixed-expenses":  {route: guard.DashboardPath, usage: "fixed-expenses list|create|update|delete|pay", run: (*App).fixedExpenses},
		"export":          {route: guard.DashboardPath, usage: "export", run: (*App).export},
		"landing":         {route: guard.LandingPath, usage: "landing", run: (*App).landing},
		"open":            {usage: "open <ruta>", run: (*App).open},
	}
}

// ErrUsage reports a bad command line.
var ErrUsage = errors.New("usage")

// Run executes one command. Errors already shown to the user satisfy
// Shown; the caller only needs the exit status for them.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		return nil
	}
	cmd, ok := commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	route, rest := cmd.route, args[1:]
	if args[0] == "open" {
		if len(rest) == 0 {
			return fmt.Errorf("%w: open needs a path", ErrUsage)
		}
		route = rest[0]
	}
	return a.navigate(ctx, route, func(ctx context.Context) error {
		return cmd.run(a, ctx, rest)
	})
}

func (a *App) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, a.ui.title.Render("Uso: gaston <comando>"))
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", commands[name].usage)
	}
}

// navigate boots the session and lets the guard decide what renders.
func (a *App) navigate(ctx context.Context, path string, render func(context.Context) error) error {
	a.router.visit(path)
	snap := a.session.Boot(ctx)

	d := guard.Resolve(path, snap)
	switch d.Kind {
	case guard.Placeholder:
		fmt.Fprintln(a.out, a.ui.muted.Render(guard.PlaceholderText))
		return nil
	case guard.Render:
		return render(ctx)
	}

	final, _, err := guard.Follow(path, snap)
	if err != nil {
		return err
	}
	a.router.visit(final)
	a.logger.DebugContext(ctx, "Redirected", "from", path, "to", final)
	return a.redirected(ctx, final)
}

// redirected renders the destination of a guard redirect. Interactive
// screens are not started implicitly; the user gets the command to run.
func (a *App) redirected(ctx context.Context, path string) error {
	switch path {
	case guard.LoginPath:
		a.loginNotice()
		return nil
	case guard.ChangePasswordPath:
		a.changePasswordNotice()
		return nil
	}
	return a.screen(ctx, path)
}

// screen renders the page behind a route path.
func (a *App) screen(ctx context.Context, path string) error {
	switch path {
	case guard.LoginPath:
		return a.login(ctx, nil)
	case guard.ChangePasswordPath:
		return a.changePassword(ctx, nil)
	case guard.DashboardPath:
		return a.dashboard(ctx, nil)
	case guard.CategoriesPath:
		return a.categories(ctx, []string{"list"})
	case guard.PocketsPath:
		return a.pockets(ctx, []string{"list"})
	case guard.LandingPath:
		return a.landing(ctx, nil)
	}
	return fmt.Errorf("%w: no screen for %s", ErrUsage, path)
}

func (a *App) open(ctx context.Context, args []string) error {
	return a.screen(ctx, routePath(a.router.Location()))
}

// routePath drops the query and a trailing slash, as the guard does.
func routePath(p string) string {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func (a *App) loginNotice() {
	fmt.Fprintln(a.out, a.ui.notice.Render("Necesitas iniciar sesión. Ejecuta: gaston login"))
}

func (a *App) changePasswordNotice() {
	fmt.Fprintln(a.out, a.ui.notice.Render("Debes cambiar tu contraseña antes de continuar. Ejecuta: gaston change-password"))
}

// shownError marks an error the user has already seen.
type shownError struct {
	err error
}

func (e *shownError) Error() string { return e.err.Error() }
func (e *shownError) Unwrap() error { return e.err }

// Shown reports whether err was already rendered.
func Shown(err error) bool {
	var se *shownError
	return errors.As(err, &se)
}

// unauthorized renders the login notice when err is a 401.
func (a *App) unauthorized(err error) bool {
	if !errors.Is(err, apiclient.ErrUnauthorized) {
		return false
	}
	a.router.Redirects()
	a.loginNotice()
	return true
}

// readFailed renders a failed load as an inline banner.
func (a *App) readFailed(err error) error {
	if !a.unauthorized(err) {
		fmt.Fprintln(a.out, a.ui.banner.Render("Error: "+err.Error()))
	}
	return &shownError{err: err}
}

// formFailed renders a rejected submission next to the form.
func (a *App) formFailed(err error) error {
	if !a.unauthorized(err) {
		fmt.Fprintln(a.out, a.ui.formError.Render(err.Error()))
	}
	return &shownError{err: err}
}

func (a *App) success(msg string) {
	fmt.Fprintln(a.out, a.ui.success.Render(msg))
}
