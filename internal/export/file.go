package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
)

// FileSink writes downloads into a directory. Existing files are never
// overwritten; a clash gets a " (n)" suffix like a browser download.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = "."
	}
	return &FileSink{dir: dir}
}

func (s *FileSink) Save(ctx context.Context, f *apiclient.File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(f.Data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}

	name := safeName(f.Name)
	for n := 0; ; n++ {
		target := filepath.Join(s.dir, numbered(name, n))
		// Link refuses to replace an existing file.
		err := os.Link(tmpName, target)
		switch {
		case err == nil:
			return target, nil
		case errors.Is(err, os.ErrExist):
			continue
		}

		// Filesystems without hard links.
		if _, statErr := os.Stat(target); statErr == nil {
			continue
		}
		if err := os.Rename(tmpName, target); err != nil {
			return "", fmt.Errorf("move export into place: %w", err)
		}
		return target, nil
	}
}

func safeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return apiclient.DefaultExportFilename
	}
	return name
}

// numbered turns "a.xlsx" into "a (2).xlsx" for n=2; n=0 keeps the name.
func numbered(name string, n int) string {
	if n == 0 {
		return name
	}
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s (%d)%s", strings.TrimSuffix(name, ext), n, ext)
}
