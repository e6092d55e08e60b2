package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var xlsxHeader = []interface{}{
	"id",
	"name",
	"sku",
	"category",
	"size",
	"price",
	"stock",
	"branch",
	"status", // derived; ignored on import
}

// ExportXLSX writes items into the first sheet of a new workbook.
func ExportXLSX(w io.Writer, items []Item) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetRow(sheet, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, it := range items {
		excelRow := []interface{}{
			it.ID,
			it.Name,
			it.SKU,
			it.Category,
			it.Size,
			it.Price,
			it.Stock,
			it.Branch,
			string(it.Status()),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// importColumns is id through branch; the status column is derived and ignored.
const importColumns = 8

// ImportXLSX reads the layout produced by ExportXLSX. Errors name the 1-based sheet row.
func ImportXLSX(r io.Reader) ([]Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var out []Item
	for i, cols := range rows[1:] {
		rowNum := i + 2
		if isBlankRow(cols) {
			continue
		}
		// GetRows drops trailing empty cells.
		for len(cols) < importColumns {
			cols = append(cols, "")
		}

		price, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(cols[5]), ",", "."), 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("row %d: invalid price %q", rowNum, cols[5])
		}
		stockStr := strings.TrimSpace(cols[6])
		stock := 0
		if stockStr != "" {
			stock, err = strconv.Atoi(stockStr)
			if err != nil || stock < 0 {
				return nil, fmt.Errorf("row %d: invalid stock %q", rowNum, cols[6])
			}
		}

		out = append(out, Item{
			ID:       strings.TrimSpace(cols[0]),
			Name:     strings.TrimSpace(cols[1]),
			SKU:      strings.TrimSpace(cols[2]),
			Category: strings.TrimSpace(cols[3]),
			Size:     strings.TrimSpace(cols[4]),
			Price:    price,
			Stock:    stock,
			Branch:   strings.TrimSpace(cols[7]),
		})
	}
	return out, nil
}

func isBlankRow(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
