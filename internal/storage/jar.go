package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/publicsuffix"

	"github.com/adrianAraqueG/gaston/internal/log"
)

// PersistentJar is an http.CookieJar that mirrors every cookie received from
// one origin into a CookieStore, so the session survives between runs.
type PersistentJar struct {
	mu     sync.Mutex
	inner  *cookiejar.Jar
	store  *CookieStore
	origin *url.URL
	logger *log.Logger
}

// NewPersistentJar returns a jar for apiURL seeded with the stored cookies.
func NewPersistentJar(ctx context.Context, store *CookieStore, apiURL string, logger *log.Logger) (*PersistentJar, error) {
	u, err := url.Parse(apiURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q", apiURL)
	}
	inner, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	if logger == nil {
		logger = log.Nop()
	}
	j := &PersistentJar{
		inner:  inner,
		store:  store,
		origin: &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"},
		logger: logger.WithComponent(log.ComponentStorage),
	}

	cookies, err := store.Load(ctx, j.originKey())
	if err != nil {
		return nil, err
	}
	// The jar honors each cookie's own Path, so seeding from the root URL
	// restores them as they were received.
	inner.SetCookies(j.origin, cookies)
	j.logger.DebugContext(ctx, "Cookie jar seeded", "count", len(cookies))
	return j, nil
}

func (j *PersistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.inner.SetCookies(u, cookies)

	if !j.sameOrigin(u) {
		return
	}
	for _, c := range cookies {
		stored := *c
		if stored.Path == "" || !strings.HasPrefix(stored.Path, "/") {
			stored.Path = defaultPath(u.Path)
		}
		if err := j.store.Save(context.Background(), j.originKey(), &stored); err != nil {
			j.logger.Error("Failed to persist cookie", log.FieldError, err, "name", c.Name)
		}
	}
}

func (j *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inner.Cookies(u)
}

// Clear drops every cookie, in memory and on disk.
func (j *PersistentJar) Clear(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	inner, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return fmt.Errorf("create cookie jar: %w", err)
	}
	j.inner = inner
	return j.store.Clear(ctx, j.originKey())
}

func (j *PersistentJar) originKey() string {
	return j.origin.Scheme + "://" + j.origin.Host
}

func (j *PersistentJar) sameOrigin(u *url.URL) bool {
	return u != nil && strings.EqualFold(u.Host, j.origin.Host) && u.Scheme == j.origin.Scheme
}

// defaultPath follows RFC 6265 section 5.1.4.
func defaultPath(path string) string {
	if path == "" || path[0] != '/' {
		return "/"
	}
	i := strings.LastIndex(path, "/")
	if i == 0 {
		return "/"
	}
	return path[:i]
}
