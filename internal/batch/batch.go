package batch

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jayempx/vcard2qr/internal/render"
	"github.com/jayempx/vcard2qr/internal/vcard"
)

// Converter writes one styled QR image per table row. Style and mapping are
// read-only for the duration of a run; the conversion itself is a sequential
// loop with per-row isolation.
type Converter struct {
	Style   render.Style
	Mapping Mapping
	OutDir  string
	Format  string // "png" (default) or "svg"
	FitSide int    // optional exact output side in pixels, 0 = native
	Logger  *log.Logger
}

// Skip records a row that produced no output file and why.
type Skip struct {
	Row    int // 1-based data row number, header excluded
	Reason string
}

// Report summarizes a batch run, in original row order.
type Report struct {
	Written []string
	Skips   []Skip
}

// Run converts every row of t. A row that fails — blank contact, oversize
// payload, unwritable file — is recorded as a skip and the run continues
// with the remaining rows. The returned error covers setup problems only
// (e.g. the output directory cannot be created), never per-row failures.
func (c *Converter) Run(t *Table) (*Report, error) {
	if len(t.Header) == 0 {
		return nil, ErrNoHeader
	}
	if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}
	mapping := c.Mapping
	if mapping == nil {
		mapping = DefaultMapping()
	}
	format := c.Format
	if format == "" {
		format = "png"
	}

	report := &Report{}
	seen := make(map[string]int)

	for i, row := range t.Rows {
		rowNum := i + 1
		rec := mapping.Record(t.Header, row)

		payload, err := vcard.Build(rec)
		if err != nil {
			if errors.Is(err, vcard.ErrEmptyContact) {
				logger.Warn("skipping blank row", "row", rowNum)
			} else {
				logger.Warn("skipping row", "row", rowNum, "err", err)
			}
			report.Skips = append(report.Skips, Skip{Row: rowNum, Reason: err.Error()})
			continue
		}

		name := uniqueName(slug(rec, rowNum), format, seen)
		path := filepath.Join(c.OutDir, name)

		if err := c.writeOne(payload, path, format); err != nil {
			logger.Error("row failed", "row", rowNum, "file", name, "err", err)
			report.Skips = append(report.Skips, Skip{Row: rowNum, Reason: err.Error()})
			continue
		}

		logger.Debug("wrote", "row", rowNum, "file", name)
		report.Written = append(report.Written, path)
	}

	return report, nil
}

func (c *Converter) writeOne(payload, path, format string) error {
	if format == "svg" {
		data, err := render.SVG(payload, c.Style)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	}

	img, err := render.Image(payload, c.Style)
	if err != nil {
		return err
	}
	out := render.FitTo(img, c.FitSide)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// slug derives a deterministic file stem from the row's primary identifying
// field: the contact name, else the email, else the row number.
func slug(rec vcard.ContactRecord, rowNum int) string {
	base := strings.TrimSpace(strings.TrimSpace(rec.FirstName) + " " + strings.TrimSpace(rec.LastName))
	if base == "" {
		base = strings.TrimSpace(rec.Email)
	}
	if base == "" {
		return fmt.Sprintf("contact-%03d", rowNum)
	}

	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	if s := strings.Trim(b.String(), "-"); s != "" {
		return s
	}
	return fmt.Sprintf("contact-%03d", rowNum)
}

// uniqueName appends a numeric suffix when two rows slug to the same stem.
func uniqueName(stem, ext string, seen map[string]int) string {
	seen[stem]++
	if n := seen[stem]; n > 1 {
		return fmt.Sprintf("%s-%d.%s", stem, n, ext)
	}
	return stem + "." + ext
}
