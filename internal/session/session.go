// Package session owns the process-wide authentication state: who is
// logged in, whether the boot check is still running and whether the user
// has to rotate their password first.
package session

import (
	"context"
	"sync"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/core"
	"github.com/adrianAraqueG/gaston/internal/log"
)

type State int

const (
	Unknown State = iota
	Loading
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

const (
	LoginPath          = "/login"
	ChangePasswordPath = "/change-password"
)

type authAPI interface {
	Login(ctx context.Context, req core.LoginRequest) (*core.LoginResponse, error)
	CurrentUser(ctx context.Context, quiet bool) (*core.User, error)
	ChangePassword(ctx context.Context, req core.ChangePasswordRequest) error
	Logout(ctx context.Context) error
}

// Navigator performs a full navigation, bypassing the route guard.
type Navigator interface {
	Redirect(path string)
}

// Snapshot is a copy of the session at one point in time.
type Snapshot struct {
	State State
	User  *core.User
}

func (s Snapshot) Loading() bool { return s.State == Unknown || s.State == Loading }

func (s Snapshot) MustChangePassword() bool {
	return s.User != nil && s.User.MustChangePassword
}

type Manager struct {
	mu    sync.Mutex
	state State
	user  *core.User

	api    authAPI
	nav    Navigator
	logger *log.Logger
}

func NewManager(api authAPI, nav Navigator, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Nop()
	}
	return &Manager{
		api:    api,
		nav:    nav,
		logger: logger.WithComponent(log.ComponentSession),
	}
}

// Boot resolves the session without triggering the 401 redirect. Any
// failure means there is no session.
func (m *Manager) Boot(ctx context.Context) Snapshot {
	m.set(Loading, nil)

	user, err := m.api.CurrentUser(ctx, true)
	if err != nil {
		m.logger.DebugContext(ctx, "No active session", log.FieldError, err)
		m.set(Anonymous, nil)
		return m.Snapshot()
	}
	m.set(Authenticated, user)
	m.logger.DebugContext(ctx, "Session restored", log.FieldID, user.ID)
	return m.Snapshot()
}

// Login authenticates and stores the user. When the server demands a
// password change it navigates straight to the change-password screen.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := core.ValidateEmail(email); err != nil {
		return err
	}
	resp, err := m.api.Login(ctx, core.LoginRequest{Email: email, Password: password})
	if err != nil {
		return apiclient.Normalize(err, "Error al iniciar sesión")
	}
	user := resp.User
	user.MustChangePassword = user.MustChangePassword || resp.MustChangePassword
	m.set(Authenticated, &user)
	m.logger.InfoContext(ctx, "Logged in", log.FieldOperation, log.OpLogin, log.FieldID, user.ID)

	if resp.MustChangePassword {
		m.navigate(ChangePasswordPath)
	}
	return nil
}

// Logout ends the session locally even when the request fails; the error
// is still returned.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.api.Logout(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "Logout request failed", log.FieldOperation, log.OpLogout, log.FieldError, err)
	}
	m.set(Anonymous, nil)
	m.navigate(LoginPath)
	return apiclient.Normalize(err, "Error al cerrar sesión")
}

// ChangePassword validates the new password against its confirmation,
// rotates it and re-reads the user so the mandatory-change flag clears.
func (m *Manager) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if err := core.ValidatePasswordChange(newPassword, confirm); err != nil {
		return err
	}
	req := core.ChangePasswordRequest{CurrentPassword: current, NewPassword: newPassword}
	if err := m.api.ChangePassword(ctx, req); err != nil {
		return apiclient.Normalize(err, "Error al cambiar contraseña")
	}
	return m.RefreshUser(ctx)
}

// RefreshUser re-fetches the current user. Unlike Boot, a 401 here redirects.
func (m *Manager) RefreshUser(ctx context.Context) error {
	user, err := m.api.CurrentUser(ctx, false)
	if err != nil {
		return apiclient.Normalize(err, "Error al cargar el usuario")
	}
	m.set(Authenticated, user)
	return nil
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	var user *core.User
	if m.user != nil {
		u := *m.user
		user = &u
	}
	return Snapshot{State: m.state, User: user}
}

func (m *Manager) set(state State, user *core.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.user = user
}

func (m *Manager) navigate(path string) {
	if m.nav != nil {
		m.nav.Redirect(path)
	}
}
