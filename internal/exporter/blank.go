package exporter

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"salesdesk/internal/model"
	"salesdesk/internal/parser"
)

// BlankTemplate builds an empty report workbook for the product type: one
// sheet whose header row carries the canonical column names the parser
// resolves first.
func BlankTemplate(productType model.ProductType) ([]byte, error) {
	if !productType.Valid() {
		return nil, fmt.Errorf("unknown product type %q", productType)
	}

	f := excelize.NewFile()
	defer f.Close()

	headers := parser.HeaderTemplate(productType)
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow("Sheet1", "A1", &row); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	// Widen the name column so the template is usable as-is.
	if err := f.SetColWidth("Sheet1", "A", "A", 28); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize template: %w", err)
	}
	return buf.Bytes(), nil
}
