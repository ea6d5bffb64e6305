package sheets

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads rows from an uploaded .xlsx workbook. The first row is
// a header and is dropped, matching the A2-based ranges used for the
// hosted sheet.
type XLSXSource struct {
	reader io.Reader
	sheet  string
}

// NewXLSXSource wraps an uploaded workbook. An empty sheet name selects
// the first sheet.
func NewXLSXSource(r io.Reader, sheet string) *XLSXSource {
	return &XLSXSource{reader: r, sheet: sheet}
}

// Rows implements services.RowSource.
func (s *XLSXSource) Rows(ctx context.Context) ([][]string, error) {
	f, err := excelize.OpenReader(s.reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}
