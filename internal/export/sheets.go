package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
)

const DefaultSheetName = "Transacciones"

// valueWriter is the slice of the Sheets values API the sink needs.
type valueWriter interface {
	Clear(ctx context.Context, spreadsheetID, rng string) error
	Update(ctx context.Context, spreadsheetID, rng string, rows [][]any) error
}

// SheetsSink replaces the content of one sheet with the first worksheet
// of the exported workbook.
type SheetsSink struct {
	values        valueWriter
	spreadsheetID string
	sheetName     string
}

// NewSheetsSinkFromEnv authenticates with a service account taken from
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewSheetsSinkFromEnv(ctx context.Context, spreadsheetID, sheetName string) (*SheetsSink, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return newSheetsSink(googleValues{svc: svc}, spreadsheetID, sheetName), nil
}

func newSheetsSink(values valueWriter, spreadsheetID, sheetName string) *SheetsSink {
	if strings.TrimSpace(sheetName) == "" {
		sheetName = DefaultSheetName
	}
	return &SheetsSink{values: values, spreadsheetID: spreadsheetID, sheetName: sheetName}
}

func (s *SheetsSink) Save(ctx context.Context, f *apiclient.File) (string, error) {
	rows, err := Rows(f.Data)
	if err != nil {
		return "", err
	}

	sheet := quoteSheet(s.sheetName)
	if err := s.values.Clear(ctx, s.spreadsheetID, sheet); err != nil {
		return "", fmt.Errorf("clear sheet %s: %w", s.sheetName, err)
	}

	values := make([][]any, len(rows))
	for i, row := range rows {
		values[i] = make([]any, len(row))
		for j, cell := range row {
			values[i][j] = cell
		}
	}
	if len(values) > 0 {
		if err := s.values.Update(ctx, s.spreadsheetID, sheet+"!A1", values); err != nil {
			return "", fmt.Errorf("write sheet %s: %w", s.sheetName, err)
		}
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", s.spreadsheetID), nil
}

// Rows reads every row of the first worksheet in an XLSX workbook.
func Rows(data []byte) ([][]string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

type googleValues struct {
	svc *gsheet.Service
}

func (g googleValues) Clear(ctx context.Context, spreadsheetID, rng string) error {
	_, err := g.svc.Spreadsheets.Values.Clear(spreadsheetID, rng, &gsheet.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

func (g googleValues) Update(ctx context.Context, spreadsheetID, rng string, rows [][]any) error {
	vr := &gsheet.ValueRange{Values: rows}
	_, err := g.svc.Spreadsheets.Values.Update(spreadsheetID, rng, vr).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	return err
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		var err error
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}
