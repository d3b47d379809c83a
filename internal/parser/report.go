package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"salesdesk/internal/model"
)

var (
	// ErrUnreadableFile means the upload stream could not be read at all.
	ErrUnreadableFile = errors.New("upload could not be read")

	// ErrMalformedReport means the bytes are not readable tabular data
	// (broken workbook, missing sheet, invalid CSV).
	ErrMalformedReport = errors.New("report is malformed")
)

// ParseResult partitions one parsed report file.
type ParseResult struct {
	// Reports are the classified rows awaiting reconciliation.
	Reports []*model.RawReport

	// NewNames are normalized row names that matched no existing
	// representative. Repeats across rows are kept; dedup happens when
	// names are materialized.
	NewNames []string
}

// ParseReport reads the first sheet of an uploaded report end to end,
// classifying each row and collecting previously-unseen representative
// names. existingNames is the current representative full-name list.
func ParseReport(data []byte, filename string, productType model.ProductType, existingNames []string) (*ParseResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrUnreadableFile)
	}

	var (
		rows []Row
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		rows, err = readCSVRows(data)
	} else {
		rows, err = readWorkbookRows(data)
	}
	if err != nil {
		return nil, err
	}

	existing := make(map[string]bool, len(existingNames))
	for _, name := range existingNames {
		existing[strings.ToLower(model.Normalize(name))] = true
	}

	result := &ParseResult{}
	for _, row := range rows {
		name := model.Normalize(row.ResolveName())
		if name == "" {
			// No identity, nothing to reconcile: neither processed nor
			// skipped.
			continue
		}

		if !existing[strings.ToLower(name)] {
			result.NewNames = append(result.NewNames, name)
		}

		if report := Classify(row, productType); report != nil {
			result.Reports = append(result.Reports, report)
		}
	}

	return result, nil
}

// readWorkbookRows decodes sheet zero of an xlsx/xls workbook into rows
// keyed by header. Raw cell values are requested so serial dates arrive
// unformatted.
func readWorkbookRows(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets", ErrMalformedReport)
	}

	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}

	return rowsFromTable(raw), nil
}

// readCSVRows decodes a CSV report into rows keyed by header.
func readCSVRows(data []byte) ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}
	return rowsFromTable(records), nil
}

// rowsFromTable turns a header row plus data rows into header-keyed maps.
// Cells without a header and headerless trailing columns are dropped.
func rowsFromTable(table [][]string) []Row {
	if len(table) == 0 {
		return nil
	}

	headers := make([]string, len(table[0]))
	for i, h := range table[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(table)-1)
	for _, record := range table[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(record) {
				continue
			}
			row[header] = record[i]
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}
