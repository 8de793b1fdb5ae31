package apiclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/export/excel", r.URL.Path)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="gastos-2024.xlsx"`)
		_, _ = w.Write([]byte("PK\x03\x04"))
	})

	f, err := c.Download(context.Background(), "/transactions/export/excel")
	require.NoError(t, err)
	assert.Equal(t, "gastos-2024.xlsx", f.Name)
	assert.Equal(t, []byte("PK\x03\x04"), f.Data)
}

func TestDownload_Unauthorized(t *testing.T) {
	c, nav := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := c.Download(context.Background(), "/transactions/export/excel")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, []string{"/login"}, nav.redirects)
}

func TestFilenameFrom(t *testing.T) {
	tests := map[string]string{
		"":                                    DefaultExportFilename,
		"attachment":                          DefaultExportFilename,
		`attachment; filename="a.xlsx"`:       "a.xlsx",
		"attachment; filename=b.xlsx":         "b.xlsx",
		"attachment; filename*=UTF-8''c.xlsx": "c.xlsx",
		"garbage;;;=":                         DefaultExportFilename,
	}
	for in, want := range tests {
		assert.Equal(t, want, filenameFrom(in), in)
	}
}
