package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportWeeklyXLSX renders a week's reports as a spreadsheet: one row per
// BHW with their completed tasks and remarks.
func ExportWeeklyXLSX(items []*WeeklyReport) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Weekly Reports"

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	headers := []string{"Health Worker", "Week Of", "Tasks Completed", "Remarks"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, w := range items {
		remarks := ""
		if w.Remarks != nil {
			remarks = *w.Remarks
		}
		tasks := ""
		for i, t := range w.Tasks {
			if i > 0 {
				tasks += "; "
			}
			tasks += t
		}

		values := []interface{}{w.BHWName, w.WeekStart.Format("2006-01-02"), tasks, remarks}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
