package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/core"
)

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Login(ctx context.Context, req core.LoginRequest) (*core.LoginResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*core.LoginResponse)
	return resp, args.Error(1)
}

func (m *mockAuth) CurrentUser(ctx context.Context, quiet bool) (*core.User, error) {
	args := m.Called(ctx, quiet)
	u, _ := args.Get(0).(*core.User)
	return u, args.Error(1)
}

func (m *mockAuth) ChangePassword(ctx context.Context, req core.ChangePasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAuth) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type recordingNav struct{ paths []string }

func (n *recordingNav) Redirect(path string) { n.paths = append(n.paths, path) }

func TestBoot(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		user      *core.User
		err       error
		wantState State
	}{
		{"authenticated", &core.User{ID: 1, Name: "Ana"}, nil, Authenticated},
		{"no session", nil, apiclient.ErrUnauthorized, Anonymous},
		{"network down", nil, apiclient.ErrNetwork, Anonymous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockAuth{}
			api.On("CurrentUser", ctx, true).Return(tt.user, tt.err).Once()
			nav := &recordingNav{}
			m := NewManager(api, nav, nil)
			assert.Equal(t, Unknown, m.Snapshot().State)
			assert.True(t, m.Snapshot().Loading())

			snap := m.Boot(ctx)
			assert.Equal(t, tt.wantState, snap.State)
			assert.False(t, snap.Loading())
			assert.Empty(t, nav.paths)
			api.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	api := &mockAuth{}
	user := core.User{ID: 1, Name: "Ana"}
	api.On("Login", ctx, core.LoginRequest{Email: "a@b.com", Password: "secret"}).
		Return(&core.LoginResponse{User: user}, nil)
	nav := &recordingNav{}
	m := NewManager(api, nav, nil)

	require.NoError(t, m.Login(ctx, "a@b.com", "secret"))
	snap := m.Snapshot()
	assert.Equal(t, Authenticated, snap.State)
	assert.Equal(t, "Ana", snap.User.Name)
	assert.False(t, snap.MustChangePassword())
	assert.Empty(t, nav.paths)
}

func TestLogin_MustChangePasswordNavigates(t *testing.T) {
	ctx := context.Background()
	api := &mockAuth{}
	api.On("Login", ctx, mock.Anything).
		Return(&core.LoginResponse{User: core.User{ID: 1}, MustChangePassword: true}, nil)
	nav := &recordingNav{}
	m := NewManager(api, nav, nil)

	require.NoError(t, m.Login(ctx, "a@b.com", "secret"))
	assert.True(t, m.Snapshot().MustChangePassword())
	assert.Equal(t, []string{ChangePasswordPath}, nav.paths)
}

func TestLogin_Errors(t *testing.T) {
	ctx := context.Background()
	api := &mockAuth{}
	m := NewManager(api, &recordingNav{}, nil)

	assert.ErrorIs(t, m.Login(ctx, "not-an-email", "x"), core.ErrInvalidEmail)
	api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)

	api.On("Login", ctx, mock.Anything).Return(nil, apiclient.ErrUnauthorized)
	err := m.Login(ctx, "a@b.com", "wrong")
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)
	assert.NotEqual(t, Authenticated, m.Snapshot().State)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	for _, apiErr := range []error{nil, errors.New("boom")} {
		api := &mockAuth{}
		api.On("CurrentUser", ctx, true).Return(&core.User{ID: 1}, nil)
		api.On("Logout", ctx).Return(apiErr)
		nav := &recordingNav{}
		m := NewManager(api, nav, nil)
		m.Boot(ctx)

		err := m.Logout(ctx)
		if apiErr == nil {
			assert.NoError(t, err)
		} else {
			assert.EqualError(t, err, "boom")
		}
		snap := m.Snapshot()
		assert.Equal(t, Anonymous, snap.State)
		assert.Nil(t, snap.User)
		assert.Equal(t, []string{LoginPath}, nav.paths)
	}
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	api := &mockAuth{}
	api.On("CurrentUser", ctx, true).Return(&core.User{ID: 1, MustChangePassword: true}, nil).Once()
	api.On("ChangePassword", ctx, core.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "newpassword"}).Return(nil).Once()
	api.On("CurrentUser", ctx, false).Return(&core.User{ID: 1, MustChangePassword: false}, nil).Once()

	m := NewManager(api, &recordingNav{}, nil)
	m.Boot(ctx)
	require.True(t, m.Snapshot().MustChangePassword())

	require.NoError(t, m.ChangePassword(ctx, "old", "newpassword", "newpassword"))
	assert.False(t, m.Snapshot().MustChangePassword())
	api.AssertExpectations(t)
}

func TestChangePassword_Validation(t *testing.T) {
	api := &mockAuth{}
	m := NewManager(api, &recordingNav{}, nil)
	ctx := context.Background()

	assert.ErrorIs(t, m.ChangePassword(ctx, "old", "newpassword", "other"), core.ErrPasswordMismatch)
	assert.ErrorIs(t, m.ChangePassword(ctx, "old", "short", "short"), core.ErrPasswordTooShort)
	api.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything)
}

func TestChangePassword_APIErrorKeepsUser(t *testing.T) {
	ctx := context.Background()
	api := &mockAuth{}
	api.On("CurrentUser", ctx, true).Return(&core.User{ID: 1, MustChangePassword: true}, nil)
	api.On("ChangePassword", ctx, mock.Anything).Return(&apiclient.APIError{StatusCode: 400, Messages: []string{"Contraseña actual incorrecta"}})

	m := NewManager(api, &recordingNav{}, nil)
	m.Boot(ctx)
	err := m.ChangePassword(ctx, "bad", "newpassword", "newpassword")
	assert.EqualError(t, err, "Contraseña actual incorrecta")
	assert.True(t, m.Snapshot().MustChangePassword())
}

func TestSnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	api := &mockAuth{}
	api.On("CurrentUser", ctx, true).Return(&core.User{ID: 1, Name: "Ana"}, nil)
	m := NewManager(api, nil, nil)
	m.Boot(ctx)

	snap := m.Snapshot()
	snap.User.Name = "changed"
	assert.Equal(t, "Ana", m.Snapshot().User.Name)
}
