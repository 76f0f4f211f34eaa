package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	trendSheet      = "Trend"
	departmentSheet = "Departments"
)

func writePunctualityWorkbook(w io.Writer, trend report.Trend, departments report.DepartmentPunctuality) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", trendSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(departmentSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	rows := [][]interface{}{{"Date", "Total Sessions", "On-time Rate"}}
	for _, p := range trend.Points {
		rows = append(rows, []interface{}{p.Date, p.TotalSessions, p.Rate})
	}
	if err := writeRows(f, trendSheet, rows); err != nil {
		return err
	}

	names := make([]string, 0, len(departments.Departments))
	for name := range departments.Departments {
		names = append(names, name)
	}
	sort.Strings(names)

	rows = [][]interface{}{{"Department", "Sample Size", "On-time Rate", departments.DateFilter.Display}}
	for _, name := range names {
		stat := departments.Departments[name]
		rows = append(rows, []interface{}{name, stat.SampleSize, stat.Rate})
	}
	if err := writeRows(f, departmentSheet, rows); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
