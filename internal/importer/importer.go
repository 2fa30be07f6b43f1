package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"nike-dashboard/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) error
}

// CSVImporter reads the scraper's CSV export and inserts/updates catalog
// rows keyed by style code.
type CSVImporter struct {
	reader *csv.Reader
	repo   ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader: csvr,
		repo:   repo,
	}
}

// Run parses CSV rows and upserts one product per row. Rows without a
// style code cannot be keyed and are skipped, not failed.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var imported int
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p := parseRow(record, index)
		if p.StyleCode == "" {
			continue
		}

		if err := i.repo.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", p.StyleCode, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

// parseRow maps the scraper's column names onto a Product. Missing columns
// simply produce empty fields; the dashboard degrades on its own.
func parseRow(record []string, index map[string]int) domain.Product {
	return domain.Product{
		DetailURL:       pick(record, index, "Product_URL"),
		ImageURL:        pick(record, index, "Product_Image_URL"),
		Tagging:         pick(record, index, "Product_Tagging"),
		Name:            pick(record, index, "Product_Name"),
		Description:     pick(record, index, "Product_Description"),
		OriginalPrice:   pick(record, index, "Original_Price"),
		DiscountPrice:   pick(record, index, "Discount_Price"),
		Sizes:           pick(record, index, "Sizes_Available"),
		Vouchers:        pick(record, index, "Vouchers"),
		AvailableColors: pick(record, index, "Available_Colors"),
		ColorShown:      pick(record, index, "Color_Shown"),
		StyleCode:       pick(record, index, "Style_Code"),
		RatingScore:     pick(record, index, "Rating_Score"),
		ReviewCount:     pick(record, index, "Review_Count"),
	}
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
