package tabular

import (
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

// Report scopes selectable from the command line.
const (
	ScopeOtras = "OTRAS"
	ScopeConve = "CONVE"
	ScopeTodas = "TODAS"
)

/*
FilterByPrefix keeps rows whose field starts with prefix. Rows with an
absent or non-text field never match.
*/
func FilterByPrefix(rows []Row, field string, prefix string) []Row {
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		text := row.Text(field)
		if text != "" && strings.HasPrefix(text, prefix) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

/*
ExcludeByPrefix drops rows whose field starts with prefix.
*/
func ExcludeByPrefix(rows []Row, field string, prefix string) []Row {
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		text := row.Text(field)
		if !strings.HasPrefix(text, prefix) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

/*
FilterScope applies the obra-id scope filter: OTRAS- or CONVE- prefixed ids,
or everything for TODAS. Unknown scopes pass everything through, with a
warning.
*/
func FilterScope(rows []Row, scope string) []Row {
	switch strings.ToUpper(strings.TrimSpace(scope)) {
	case ScopeTodas, "":
		return rows
	case ScopeOtras:
		return FilterByPrefix(rows, "id_obra", "OTRAS-")
	case ScopeConve:
		return FilterByPrefix(rows, "id_obra", "CONVE-")
	default:
		tl.Log(tl.Warning, palette.PurpleBright, "Unknown scope '%s', keeping all rows", scope)
		return rows
	}
}
