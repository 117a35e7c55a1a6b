package export

import (
	"fmt"

	"github.com/gosom/naver-place-reviews/naver"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteExcel writes the same table as WriteCSV to an xlsx workbook.
func WriteExcel(path string, reviews []naver.Review) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	var header naver.Review

	rows := make([][]string, 0, len(reviews)+1)
	rows = append(rows, header.CsvHeaders())

	for i := range reviews {
		rows = append(rows, reviews[i].CsvRow())
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save xlsx: %w", err)
	}

	return nil
}
