package inventory

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX renders the medicine list as a spreadsheet with one row per
// batch, grouped header rows per med_code.
func ExportXLSX(groups []*Group) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Inventory"

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	headers := []string{"Code", "Name", "Type", "Category", "Supplier", "Quantity", "Expiry", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, g := range groups {
		for _, m := range g.Batches {
			values := []interface{}{
				m.MedCode, m.Name,
				deref(m.MedType), deref(m.Category), deref(m.Supplier),
				m.Quantity, m.ExpiryDate.Format("2006-01-02"), m.Status,
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, err
				}
			}
			row++
		}
	}

	return f, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
