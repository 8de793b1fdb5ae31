// Package storage persists the session cookie between runs. Only cookies
// live here; domain data always comes from the API.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type CookieStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewCookieStore(dbPath string) (*CookieStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &CookieStore{db: db, now: time.Now}, nil
}

func (s *CookieStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save upserts c for origin, or deletes it when the server expired it.
// c.Path must already be the effective path.
func (s *CookieStore) Save(ctx context.Context, origin string, c *http.Cookie) error {
	now := s.now()
	expires, expired := expiry(c, now)
	if expired {
		_, err := s.db.ExecContext(ctx,
			`DELETE FROM cookies WHERE origin = ? AND name = ? AND path = ?`,
			origin, c.Name, c.Path)
		if err != nil {
			return fmt.Errorf("delete cookie %s: %w", c.Name, err)
		}
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cookies (origin, name, path, domain, value, expires_at, secure, http_only, same_site, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (origin, name, path) DO UPDATE SET
			domain = excluded.domain,
			value = excluded.value,
			expires_at = excluded.expires_at,
			secure = excluded.secure,
			http_only = excluded.http_only,
			same_site = excluded.same_site,
			updated_at = excluded.updated_at`,
		origin, c.Name, c.Path, c.Domain, c.Value, expires,
		c.Secure, c.HttpOnly, int(c.SameSite), now.Unix())
	if err != nil {
		return fmt.Errorf("save cookie %s: %w", c.Name, err)
	}
	return nil
}

// Load returns the unexpired cookies for origin and prunes the rest.
func (s *CookieStore) Load(ctx context.Context, origin string) ([]*http.Cookie, error) {
	now := s.now().Unix()
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM cookies WHERE expires_at IS NOT NULL AND expires_at <= ?`, now); err != nil {
		return nil, fmt.Errorf("prune cookies: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, path, domain, value, expires_at, secure, http_only, same_site
		FROM cookies WHERE origin = ? ORDER BY name, path`, origin)
	if err != nil {
		return nil, fmt.Errorf("query cookies: %w", err)
	}
	defer rows.Close()

	var cookies []*http.Cookie
	for rows.Next() {
		var (
			c        http.Cookie
			expires  sql.NullInt64
			sameSite int
		)
		if err := rows.Scan(&c.Name, &c.Path, &c.Domain, &c.Value, &expires, &c.Secure, &c.HttpOnly, &sameSite); err != nil {
			return nil, fmt.Errorf("scan cookie: %w", err)
		}
		if expires.Valid {
			c.Expires = time.Unix(expires.Int64, 0)
		}
		c.SameSite = http.SameSite(sameSite)
		cookies = append(cookies, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cookies: %w", err)
	}
	return cookies, nil
}

// Clear forgets every cookie for origin.
func (s *CookieStore) Clear(ctx context.Context, origin string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cookies WHERE origin = ?`, origin); err != nil {
		return fmt.Errorf("clear cookies: %w", err)
	}
	return nil
}

// expiry returns the absolute expiry in unix seconds (nil for a session
// cookie) and whether the cookie is already expired.
func expiry(c *http.Cookie, now time.Time) (*int64, bool) {
	switch {
	case c.MaxAge < 0:
		return nil, true
	case c.MaxAge > 0:
		v := now.Add(time.Duration(c.MaxAge) * time.Second).Unix()
		return &v, false
	case !c.Expires.IsZero():
		if !c.Expires.After(now) {
			return nil, true
		}
		v := c.Expires.Unix()
		return &v, false
	default:
		return nil, false
	}
}
