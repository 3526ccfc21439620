package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuumbleweed/xerr"

	"obra-reports/src/pkg/numeric"
	"obra-reports/src/pkg/tabular"
	"obra-reports/src/pkg/uvi"
)

type stubFetcher struct {
	value string
	ok    bool
	calls int
}

func (s *stubFetcher) FetchDailyValue() (string, bool) {
	s.calls += 1
	return s.value, s.ok
}

func obraRow(id string) tabular.Row {
	return tabular.Row{
		"id_obra":                  numeric.FromText(id),
		"municipio":                numeric.FromText("La Plata"),
		"descripcion":              numeric.FromText("Obra de 120 viviendas. Segunda etapa."),
		"viv_totales":              numeric.FromText("120"),
		"viv_entregadas":           numeric.FromText("20"),
		"porcentaje_avance_fisico": numeric.FromText("0,25"),
		"cantidad_uvis":            numeric.FromText("1.000"),
		"uvi_pagado":               numeric.FromText("400"),
		"monto_actualizado":        numeric.FromText("2.000.000"),
		"monto_pagado":             numeric.FromText("500.000"),
	}
}

func TestBuildContext(t *testing.T) {
	daily := uvi.NewDailyValue(&stubFetcher{value: "635.12", ok: true})
	builder := &Builder{ImagesDir: t.TempDir(), Daily: daily}

	context := builder.Build(obraRow("OTRAS-001"))

	assert.Equal(t, "OTRAS-001", context["ID_obra"])
	assert.Equal(t, "La Plata", context["Municipio"])
	assert.Equal(t, "100", context["Viviendas_Restantes"])
	assert.Equal(t, "25%", context["Avance_fisico"])
	assert.Equal(t, "75%", context["Avance_Restante"])
	assert.Equal(t, "$600", context["Uvis_Restantes"])
	assert.Equal(t, "$1.500.000", context["Monto_Restante_Actualizado"])
	assert.Equal(t, "$635.120,00", context["Saldo_Obra_Actualizado"])
	assert.Equal(t, "$635,12", context["Valor_UVI_Diario_Formateado"])
}

func TestBuildContextAllMissing(t *testing.T) {
	builder := &Builder{ImagesDir: t.TempDir()}

	context := builder.Build(tabular.Row{})

	for _, key := range []string{
		"Viviendas_Restantes", "Avance_Restante", "Uvis_Restantes",
		"Monto_Restante_Actualizado", "Saldo_Obra_Actualizado",
		"Monto_Convenio", "Fecha_ultimo_pago", "Estado",
	} {
		assert.Equal(t, "--", context[key], "key %s", key)
	}

	assert.Empty(t, context["noticias"])
}

func TestBuildContextSharesDailyValueAcrossRows(t *testing.T) {
	source := &stubFetcher{value: "635.12", ok: true}
	daily := uvi.NewDailyValue(source)
	builder := &Builder{ImagesDir: t.TempDir(), Daily: daily}

	for index := 0; index < 5; index += 1 {
		builder.Build(obraRow(fmt.Sprintf("OTRAS-%03d", index)))
	}

	assert.Equal(t, 1, source.calls)
}

func TestBuildContextFailedFetchRendersPlaceholder(t *testing.T) {
	daily := uvi.NewDailyValue(&stubFetcher{ok: false})
	builder := &Builder{ImagesDir: t.TempDir(), Daily: daily}

	context := builder.Build(obraRow("OTRAS-001"))

	assert.Equal(t, "--", context["Saldo_Obra_Actualizado"])
	assert.Equal(t, "--", context["Valor_UVI_Diario_Formateado"])
}

func TestRunBatchContinuesPastFailures(t *testing.T) {
	rows := []tabular.Row{
		obraRow("OTRAS-001"),
		obraRow("OTRAS-002"),
		obraRow("OTRAS-003"),
	}

	process := func(row tabular.Row) (string, *xerr.Error) {
		if row.Text("id_obra") == "OTRAS-002" {
			return "", xerr.NewError(fmt.Errorf("boom"), "render obra", row.Text("id_obra"))
		}
		return "/out/" + row.Text("id_obra") + ".pdf", nil
	}

	summary := RunBatch(rows, process)

	assert.Equal(t, 2, summary.Successes)
	assert.Equal(t, 1, summary.Failures)
	require.Len(t, summary.Outcomes, 3)

	// Source order is preserved, including the failed row.
	assert.Equal(t, "OTRAS-001", summary.Outcomes[0].ObraID)
	assert.Nil(t, summary.Outcomes[0].Err)
	assert.Equal(t, "OTRAS-002", summary.Outcomes[1].ObraID)
	assert.NotNil(t, summary.Outcomes[1].Err)
	assert.Equal(t, "OTRAS-003", summary.Outcomes[2].ObraID)
	assert.Nil(t, summary.Outcomes[2].Err)
}

func TestRenderInforme(t *testing.T) {
	templatesDir := t.TempDir()
	templateBody := `<html><body><h1>{{.ID_obra}}</h1><p>{{.Municipio}}</p><p>{{.Uvis_Restantes}}</p></body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "informe.html"), []byte(templateBody), 0o644))

	templates, loadErr := LoadTemplates(templatesDir)
	require.Nil(t, loadErr)

	builder := &Builder{ImagesDir: t.TempDir()}
	context := builder.Build(obraRow("OTRAS-001"))

	htmlText, renderErr := templates.RenderInforme(context)
	require.Nil(t, renderErr)

	assert.True(t, strings.Contains(htmlText, "OTRAS-001"))
	assert.True(t, strings.Contains(htmlText, "La Plata"))
	assert.True(t, strings.Contains(htmlText, "$600"))
}

func TestDumpDebugHTML(t *testing.T) {
	debugDir := filepath.Join(t.TempDir(), "debug")

	DumpDebugHTML(debugDir, "OTRAS-001", "<html>partial</html>")

	content, readErr := os.ReadFile(filepath.Join(debugDir, "error_OTRAS-001.html"))
	require.NoError(t, readErr)
	assert.Equal(t, "<html>partial</html>", string(content))
}
