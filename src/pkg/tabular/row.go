// Package tabular reads obra rows from Excel workbooks and published sheets.
package tabular

import (
	"strconv"
	"strings"

	"obra-reports/src/pkg/numeric"
)

// Row maps normalized field names to raw cell values.
type Row map[string]numeric.Raw

/*
Raw returns the cell for a field, Missing when the column is absent.
*/
func (row Row) Raw(field string) numeric.Raw {
	value, exists := row[field]
	if !exists {
		return numeric.Missing()
	}
	return value
}

/*
Text returns a field as display text, with the placeholder for anything
absent or blank.
*/
func (row Row) Text(field string) string {
	raw := row.Raw(field)

	switch raw.Kind {
	case numeric.KindText:
		trimmed := strings.TrimSpace(raw.Text)
		if trimmed == "" {
			return numeric.Placeholder
		}
		return trimmed
	case numeric.KindNumber:
		return strconv.FormatFloat(raw.Number, 'f', -1, 64)
	default:
		return numeric.Placeholder
	}
}

/*
NormalizeColumnName maps a header cell to its canonical field name:
trimmed, lowercased, spaces collapsed to underscores. The legacy "ID" header
maps to "id_obra".
*/
func NormalizeColumnName(header string) string {
	trimmed := strings.TrimSpace(header)
	if trimmed == "ID" {
		return "id_obra"
	}

	lowered := strings.ToLower(trimmed)
	return strings.ReplaceAll(lowered, " ", "_")
}

/*
RowsFromCells converts a header row plus data rows of string cells into Rows.
Blank cells classify as missing so downstream calculation sees an explicit
absence rather than an empty string.
*/
func RowsFromCells(header []string, data [][]string) []Row {
	fieldNames := make([]string, len(header))
	for index, cell := range header {
		fieldNames[index] = NormalizeColumnName(cell)
	}

	rows := make([]Row, 0, len(data))
	for _, cells := range data {
		row := make(Row, len(fieldNames))
		for index, fieldName := range fieldNames {
			if fieldName == "" {
				continue
			}
			if index >= len(cells) || strings.TrimSpace(cells[index]) == "" {
				row[fieldName] = numeric.Missing()
				continue
			}
			row[fieldName] = numeric.FromText(cells[index])
		}
		rows = append(rows, row)
	}

	return rows
}
