package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"backoffice-api/internal/domain"
)

type ClientWriter interface {
	Upsert(ctx context.Context, c domain.Client) (*domain.Client, error)
}

// CSVImporter bulk-loads clients from the ERP's CSV export.
// Expected headers: trade_name, legal_name, document, email, phone, region.
type CSVImporter struct {
	reader     *csv.Reader
	clientRepo ClientWriter
}

func NewCSVImporter(r io.Reader, repo ClientWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // exports sometimes carry trailing commas
	return &CSVImporter{
		reader:     csvr,
		clientRepo: repo,
	}
}

// Run parses CSV rows and upserts one client per row, keyed on document.
// It stops at the first bad row so a broken export is noticed, not half-loaded.
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

		c := domain.Client{
			TradeName: pick(record, index, "trade_name"),
			LegalName: pick(record, index, "legal_name"),
			Document:  pick(record, index, "document"),
			Email:     strings.ToLower(pick(record, index, "email")),
			Phone:     pick(record, index, "phone"),
			Region:    pick(record, index, "region"),
		}
		if c.TradeName == "" && c.Document == "" {
			continue // blank line
		}
		if c.TradeName == "" || c.Document == "" || c.Email == "" {
			return imported, fmt.Errorf("invalid client row (missing required fields) for document %q", c.Document)
		}

		if _, err := i.clientRepo.Upsert(ctx, c); err != nil {
			return imported, fmt.Errorf("upsert client %q: %w", c.Document, err)
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

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
