package attendance

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetRecords = "Attendance"
	sheetSummary = "Summary"
)

var (
	recordsHeader = []any{"Employee", "Employee ID", "Date", "Status"}
	summaryHeader = []any{"Employee", "Employee ID", "Present", "Absent"}
)

// BuildWorkbook writes the records and the per-employee counts to an xlsx
// workbook with one sheet each.
func BuildWorkbook(records []Record, summary []Summary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetRecords); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	rows := make([][]any, 0, len(records)+1)
	rows = append(rows, recordsHeader)
	for _, r := range records {
		rows = append(rows, []any{r.EmployeeName, r.EmployeeID, r.Date, string(r.Status)})
	}
	if err := writeRows(f, sheetRecords, rows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}
	rows = make([][]any, 0, len(summary)+1)
	rows = append(rows, summaryHeader)
	for _, s := range summary {
		rows = append(rows, []any{s.FullName, s.EmployeeID, s.Present, s.Absent})
	}
	if err := writeRows(f, sheetSummary, rows); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
