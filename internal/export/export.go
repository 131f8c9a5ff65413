// Package export writes frames to CSV and XLSX files.
package export

import (
	"encoding/csv"
	"os"

	"github.com/xuri/excelize/v2"

	"simlab/internal/frame"
)

// WriteCSV writes the frame to path with a header row.
func WriteCSV(path string, f *frame.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(f.Headers()); err != nil {
		return err
	}
	for _, row := range f.Records() {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteXLSX writes the frame to path as a single-sheet workbook.
func WriteXLSX(path string, f *frame.Frame) error {
	wb := excelize.NewFile()

	sheet := "Sheet1"
	if idx, err := wb.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := wb.NewSheet(sheet)
		if err != nil {
			return err
		}
		wb.SetActiveSheet(idx)
	}

	for i, h := range f.Headers() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := wb.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, row := range f.Records() {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := wb.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return wb.SaveAs(path)
}
