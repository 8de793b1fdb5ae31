// Package guard decides, per navigation, whether a route renders, shows the
// loading placeholder or redirects elsewhere.
package guard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrianAraqueG/gaston/internal/session"
)

const (
	RootPath           = "/"
	LoginPath          = session.LoginPath
	ChangePasswordPath = session.ChangePasswordPath
	DashboardPath      = "/dashboard"
	CategoriesPath     = "/categories"
	PocketsPath        = "/pockets"
	LandingPath        = "/landing"

	PlaceholderText = "Cargando..."
)

// MaxRedirects bounds Follow; a longer chain means the table is inconsistent.
const MaxRedirects = 5

var ErrRedirectLoop = errors.New("too many redirects")

type Access int

const (
	// Public routes render for everyone.
	Public Access = iota
	// GuestOnly routes send authenticated users to the dashboard.
	GuestOnly
	// Protected routes need a session and a rotated password.
	Protected
)

type Kind int

const (
	Render Kind = iota
	Placeholder
	Redirect
)

func (k Kind) String() string {
	switch k {
	case Render:
		return "render"
	case Placeholder:
		return "placeholder"
	default:
		return "redirect"
	}
}

type Decision struct {
	Kind   Kind
	Target string
}

func (d Decision) String() string {
	if d.Kind == Redirect {
		return fmt.Sprintf("redirect(%s)", d.Target)
	}
	return d.Kind.String()
}

// Routes is the navigation table. Paths not listed here, and the root,
// redirect to the landing screen for the current session.
var Routes = map[string]Access{
	LoginPath:          GuestOnly,
	ChangePasswordPath: Protected,
	DashboardPath:      Protected,
	CategoriesPath:     Protected,
	PocketsPath:        Protected,
	LandingPath:        Public,
}

// Resolve evaluates path against the current session.
func Resolve(path string, s session.Snapshot) Decision {
	if s.Loading() {
		return Decision{Kind: Placeholder}
	}
	authenticated := s.User != nil

	access, known := Routes[clean(path)]
	if !known {
		if authenticated {
			return redirect(DashboardPath)
		}
		return redirect(LoginPath)
	}

	switch access {
	case GuestOnly:
		if authenticated {
			return redirect(DashboardPath)
		}
	case Protected:
		if !authenticated {
			return redirect(LoginPath)
		}
		if s.MustChangePassword() && clean(path) != ChangePasswordPath {
			return redirect(ChangePasswordPath)
		}
	}
	return Decision{Kind: Render}
}

// Follow resolves path and every redirect after it. It returns the path that
// finally renders or shows the placeholder.
func Follow(path string, s session.Snapshot) (string, Decision, error) {
	current := clean(path)
	for range MaxRedirects + 1 {
		d := Resolve(current, s)
		if d.Kind != Redirect {
			return current, d, nil
		}
		current = d.Target
	}
	return current, Decision{}, fmt.Errorf("%w starting at %s", ErrRedirectLoop, path)
}

func redirect(target string) Decision {
	return Decision{Kind: Redirect, Target: target}
}

func clean(path string) string {
	if path == "" {
		return RootPath
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
