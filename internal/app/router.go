package app

import "sync"

// Router tracks the current location. The API client and the session
// manager redirect through it.
type Router struct {
	mu       sync.Mutex
	location string
	history  []string
}

func NewRouter() *Router {
	return &Router{location: "/"}
}

func (r *Router) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.location
}

// Redirect moves to path and remembers the move so the current screen can
// react to it.
func (r *Router) Redirect(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.location = path
	r.history = append(r.history, path)
}

// visit sets the location without recording a redirect.
func (r *Router) visit(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.location = path
}

// Redirects returns and forgets the redirects recorded since the last call.
func (r *Router) Redirects() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.history
	r.history = nil
	return out
}
