// Package export decides where a downloaded spreadsheet ends up: a file on
// disk, memory, or a Google Sheet.
package export

import (
	"context"
	"fmt"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/log"
)

// Sink stores a downloaded file and returns a human-readable location.
type Sink interface {
	Save(ctx context.Context, f *apiclient.File) (string, error)
}

type SinkType string

const (
	FileSinkType   SinkType = "file"
	SheetsSinkType SinkType = "sheets"
	MemorySinkType SinkType = "memory"
)

func (t SinkType) IsValid() bool {
	switch t {
	case FileSinkType, SheetsSinkType, MemorySinkType:
		return true
	default:
		return false
	}
}

type Config struct {
	Type SinkType

	// file
	Dir string

	// sheets
	SpreadsheetID string
	SheetName     string
}

// New builds the sink selected by cfg.Type.
func New(ctx context.Context, cfg Config, logger *log.Logger) (Sink, error) {
	if logger == nil {
		logger = log.Nop()
	}
	logger = logger.WithComponent(log.ComponentExport)

	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid export sink: %s", cfg.Type)
	}

	switch cfg.Type {
	case SheetsSinkType:
		sink, err := NewSheetsSinkFromEnv(ctx, cfg.SpreadsheetID, cfg.SheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sheets export: %w", err)
		}
		logger.Info("Initialized sheets export", "spreadsheet_id", cfg.SpreadsheetID, "sheet", cfg.SheetName)
		return sink, nil
	case MemorySinkType:
		logger.Info("Initialized memory export")
		return NewMemorySink(), nil
	default:
		logger.Debug("Initialized file export", "dir", cfg.Dir)
		return NewFileSink(cfg.Dir), nil
	}
}
