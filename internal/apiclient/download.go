package apiclient

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
)

const DefaultExportFilename = "transacciones.xlsx"

// File is a binary download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Download fetches a binary resource. Status handling matches Do, but the
// body is returned as is.
func (c *Client) Download(ctx context.Context, endpoint string, opts ...RequestOption) (*File, error) {
	var rc requestConfig
	for _, opt := range opts {
		opt(&rc)
	}

	resp, err := c.send(ctx, http.MethodGet, endpoint, nil, rc)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, rc); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read download: %v", ErrNetwork, err)
	}
	return &File{
		Name:        filenameFrom(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func filenameFrom(disposition string) string {
	if disposition == "" {
		return DefaultExportFilename
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil || params["filename"] == "" {
		return DefaultExportFilename
	}
	return params["filename"]
}
