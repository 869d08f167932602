// Package batch converts spreadsheet rows of contact data into styled QR
// images, one file per row, tolerating bad rows without aborting the run.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Errors
var (
	ErrNoHeader          = errors.New("table has no header row")
	ErrUnsupportedFormat = errors.New("unsupported table format")
)

// Table is an imported spreadsheet: one header row naming the columns and any
// number of data rows. Rows may be shorter than the header; missing cells
// read as empty.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadCSV reads a comma-separated table. The first record is the header.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are tolerated, cells default empty
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// ReadXLSX reads the first sheet of an Excel workbook. The first row is the
// header.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

// ReadFile loads a table from path, dispatching on the file extension
// (.csv, .xlsx).
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
