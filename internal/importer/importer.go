package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"foodrepublic/internal/domain"
	menurepo "foodrepublic/internal/repository/menu"
)

type MenuWriter interface {
	Create(ctx context.Context, in menurepo.CreateItemInput) (*domain.MenuItem, error)
}

// CSVImporter reads menu CSV exports and inserts catalog items. Rows
// whose normalized name already exists in their category are skipped.
type CSVImporter struct {
	reader   *csv.Reader
	menuRepo MenuWriter
}

func NewCSVImporter(r io.Reader, repo MenuWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		menuRepo: repo,
	}
}

// Result summarizes an import run.
type Result struct {
	Imported int
	Skipped  int
}

// Run parses CSV rows and inserts one menu item per row.
func (i *CSVImporter) Run(ctx context.Context) (Result, error) {
	var res Result

	headers, err := i.reader.Read()
	if err != nil {
		return res, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read row: %w", err)
		}
		line++

		category := pick(record, index, "category")
		rawName := pick(record, index, "item_name")
		if category == "" && rawName == "" {
			continue
		}
		if !domain.ValidCategory(category) {
			return res, fmt.Errorf("row %d: unknown category %q", line, category)
		}
		name := domain.NormalizeItemName(rawName)
		if name == "" {
			return res, fmt.Errorf("row %d: missing item_name", line)
		}
		cents, err := parsePriceCents(record, index)
		if err != nil {
			return res, fmt.Errorf("row %d: %w", line, err)
		}

		_, err = i.menuRepo.Create(ctx, menurepo.CreateItemInput{
			Category:  category,
			ItemName:  name,
			ItemPrice: cents,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			res.Skipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("insert item %q: %w", name, err)
		}
		res.Imported++
	}

	return res, nil
}

// parsePriceCents accepts either an integer item_price_cents column or a
// decimal item_price column ("6.50" means 650 cents).
func parsePriceCents(record []string, index map[string]int) (int64, error) {
	if raw := pick(record, index, "item_price_cents"); raw != "" {
		cents, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("invalid item_price_cents %q", raw)
		}
		return cents, nil
	}

	raw := pick(record, index, "item_price")
	if raw == "" {
		return 0, errors.New("missing item price")
	}
	whole, frac, _ := strings.Cut(raw, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, fmt.Errorf("invalid item_price %q", raw)
	}
	cents := units * 100
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		sub, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid item_price %q", raw)
		}
		cents += sub
	}
	return cents, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
