package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
ReadWorkbook loads obra rows from a local Excel workbook.

sheetName empty means the first sheet. headerRow is 1-based; rows above it
are skipped (exported workbooks carry title banners before the real header).
*/
func ReadWorkbook(path string, sheetName string, headerRow int) (rows []Row, e *xerr.Error) {
	tl.Log(tl.Info, palette.Blue, "%s workbook '%s'", "Reading", path)

	workbook, openErr := excelize.OpenFile(path)
	if openErr != nil {
		e = xerr.NewError(openErr, "open Excel workbook", path)
		return rows, e
	}
	defer func() {
		_ = workbook.Close()
	}()

	if sheetName == "" {
		sheetName = workbook.GetSheetName(0)
	}

	cells, rowsErr := workbook.GetRows(sheetName)
	if rowsErr != nil {
		e = xerr.NewError(rowsErr, "read worksheet rows", sheetName)
		return rows, e
	}

	if headerRow < 1 {
		headerRow = 1
	}
	if len(cells) < headerRow {
		err := fmt.Errorf("worksheet has %d rows, header expected at row %d", len(cells), headerRow)
		e = xerr.NewError(err, "locate header row", sheetName)
		return rows, e
	}

	header := cells[headerRow-1]
	rows = RowsFromCells(header, cells[headerRow:])

	tl.Log(tl.Info1, palette.Green, "Workbook loaded: '%d' rows from sheet '%s'", len(rows), sheetName)
	return rows, e
}

/*
ValidateColumns checks that every required column is present, logging the
missing ones. Validation failures are warnings, not errors: absent columns
degrade to "--" fields downstream.
*/
func ValidateColumns(rows []Row, requiredColumns []string) bool {
	if len(rows) == 0 {
		return len(requiredColumns) == 0
	}

	missing := make([]string, 0)
	for _, column := range requiredColumns {
		if _, exists := rows[0][NormalizeColumnName(column)]; !exists {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		tl.Log(tl.Warning, palette.PurpleBright, "Missing columns in source data: '%s'", missing)
		return false
	}

	return true
}
