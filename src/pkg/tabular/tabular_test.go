package tabular

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"obra-reports/src/pkg/numeric"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)

	cells := [][]any{
		{"ID", "Municipio", "viv totales", "porcentaje avance fisico"},
		{"OTRAS-001", "La Plata", "1.500", "0,43"},
		{"CONVE-002", "Quilmes", "80", "95"},
		{"OTRAS-003", "", "", ""},
	}

	for rowIndex, rowCells := range cells {
		for colIndex, cellValue := range rowCells {
			cellName, cellErr := excelize.CoordinatesToCellName(colIndex+1, rowIndex+1)
			require.NoError(t, cellErr)
			require.NoError(t, workbook.SetCellValue(sheet, cellName, cellValue))
		}
	}

	path := filepath.Join(t.TempDir(), "obras.xlsx")
	require.NoError(t, workbook.SaveAs(path))
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeTestWorkbook(t)

	rows, readErr := ReadWorkbook(path, "", 1)
	require.Nil(t, readErr)
	require.Len(t, rows, 3)

	assert.Equal(t, "OTRAS-001", rows[0].Text("id_obra"))
	assert.Equal(t, "La Plata", rows[0].Text("municipio"))
	assert.Equal(t, 1500.0, numeric.Normalize(rows[0].Raw("viv_totales")).Value)
	assert.Equal(t, 0.43, numeric.Normalize(rows[0].Raw("porcentaje_avance_fisico")).Value)

	// Blank cells classify as missing, not as empty text.
	assert.Equal(t, numeric.KindMissing, rows[2].Raw("municipio").Kind)
	assert.Equal(t, "--", rows[2].Text("municipio"))
}

func TestReadWorkbookMissingFile(t *testing.T) {
	_, readErr := ReadWorkbook("/nonexistent/obras.xlsx", "", 1)
	assert.NotNil(t, readErr)
}

func TestValidateColumns(t *testing.T) {
	path := writeTestWorkbook(t)
	rows, readErr := ReadWorkbook(path, "", 1)
	require.Nil(t, readErr)

	assert.True(t, ValidateColumns(rows, []string{"id_obra", "municipio"}))
	assert.False(t, ValidateColumns(rows, []string{"id_obra", "monto_convenio"}))
}

func TestFilterScope(t *testing.T) {
	rows := []Row{
		{"id_obra": numeric.FromText("OTRAS-001")},
		{"id_obra": numeric.FromText("CONVE-002")},
		{"id_obra": numeric.FromText("OTRAS-003")},
		{"id_obra": numeric.Missing()},
	}

	assert.Len(t, FilterScope(rows, "OTRAS"), 2)
	assert.Len(t, FilterScope(rows, "CONVE"), 1)
	assert.Len(t, FilterScope(rows, "TODAS"), 4)
	assert.Len(t, FilterScope(rows, "whatever"), 4)
}

func TestExcludeByPrefix(t *testing.T) {
	rows := []Row{
		{"id_obra": numeric.FromText("OTRAS-001")},
		{"id_obra": numeric.FromText("CONVE-002")},
	}

	remaining := ExcludeByPrefix(rows, "id_obra", "OTRAS-")
	assert.Len(t, remaining, 1)
	assert.Equal(t, "CONVE-002", remaining[0].Text("id_obra"))
}

func TestSheetSourceNoticias(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(
			"id_obra,diario,titulo noticia,link noticia,copete\n" +
				"OTRAS-001,El Dia,Avanza la obra,https://example.com/nota,Primera etapa lista\n" +
				"CONVE-009,Clarin,Otra obra,https://example.com/otra,Sin relacion\n",
		))
	}))
	defer server.Close()

	source := &SheetSource{BaseURL: server.URL, Timeout: 2 * time.Second}

	noticias := source.Noticias("sheet-id", "Noticias", "OTRAS-001")
	require.Len(t, noticias, 1)
	assert.Equal(t, "El Dia", noticias[0].Diario)
	assert.Equal(t, "Avanza la obra", noticias[0].Titulo)
}

func TestSheetSourceNoticiasDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	source := &SheetSource{BaseURL: server.URL, Timeout: 2 * time.Second}

	noticias := source.Noticias("sheet-id", "Noticias", "OTRAS-001")
	assert.Empty(t, noticias)
}
