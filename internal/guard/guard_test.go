package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianAraqueG/gaston/internal/core"
	"github.com/adrianAraqueG/gaston/internal/session"
)

var (
	loading    = session.Snapshot{State: session.Loading}
	anonymous  = session.Snapshot{State: session.Anonymous}
	user       = session.Snapshot{State: session.Authenticated, User: &core.User{ID: 1}}
	mustRotate = session.Snapshot{State: session.Authenticated, User: &core.User{ID: 1, MustChangePassword: true}}
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		path string
		snap session.Snapshot
		want Decision
	}{
		{"loading shows placeholder", DashboardPath, loading, Decision{Kind: Placeholder}},
		{"loading on login too", LoginPath, loading, Decision{Kind: Placeholder}},
		{"unknown state is loading", DashboardPath, session.Snapshot{}, Decision{Kind: Placeholder}},

		{"root anonymous", RootPath, anonymous, redirect(LoginPath)},
		{"root authenticated", RootPath, user, redirect(DashboardPath)},
		{"unknown anonymous", "/nope", anonymous, redirect(LoginPath)},
		{"unknown authenticated", "/nope", user, redirect(DashboardPath)},

		{"login anonymous", LoginPath, anonymous, Decision{Kind: Render}},
		{"login authenticated", LoginPath, user, redirect(DashboardPath)},

		{"protected anonymous", DashboardPath, anonymous, redirect(LoginPath)},
		{"protected authenticated", CategoriesPath, user, Decision{Kind: Render}},
		{"pockets authenticated", PocketsPath, user, Decision{Kind: Render}},
		{"must rotate on dashboard", DashboardPath, mustRotate, redirect(ChangePasswordPath)},
		{"must rotate on change-password", ChangePasswordPath, mustRotate, Decision{Kind: Render}},
		{"change-password anonymous", ChangePasswordPath, anonymous, redirect(LoginPath)},

		{"landing is public", LandingPath, anonymous, Decision{Kind: Render}},
		{"landing with rotation pending", LandingPath, mustRotate, Decision{Kind: Render}},

		{"trailing slash", "/dashboard/", user, Decision{Kind: Render}},
		{"query string", "/pockets?x=1", user, Decision{Kind: Render}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.path, tt.snap))
		})
	}
}

func TestFollow(t *testing.T) {
	path, d, err := Follow("/", mustRotate)
	require.NoError(t, err)
	assert.Equal(t, ChangePasswordPath, path)
	assert.Equal(t, Render, d.Kind)

	path, d, err = Follow(LoginPath, mustRotate)
	require.NoError(t, err)
	assert.Equal(t, ChangePasswordPath, path)
	assert.Equal(t, Render, d.Kind)

	path, _, err = Follow("/whatever", anonymous)
	require.NoError(t, err)
	assert.Equal(t, LoginPath, path)

	path, d, err = Follow(DashboardPath, loading)
	require.NoError(t, err)
	assert.Equal(t, DashboardPath, path)
	assert.Equal(t, Placeholder, d.Kind)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "render", Decision{Kind: Render}.String())
	assert.Equal(t, "redirect(/login)", redirect(LoginPath).String())
}
