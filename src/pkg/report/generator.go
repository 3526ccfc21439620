package report

import (
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"obra-reports/src/pkg/pdf"
	"obra-reports/src/pkg/tabular"
)

/*
Generator ties the full per-obra pipeline together:
context build -> template render -> PDF render.
*/
type Generator struct {
	Builder   *Builder
	Templates *Templates
	Renderer  *pdf.Renderer
	DebugDir  string
}

/*
ProcessRow produces one PDF for one obra row.

A render failure dumps the HTML produced so far into DebugDir and reports
the row as failed; the caller's batch loop carries on.
*/
func (generator *Generator) ProcessRow(row tabular.Row) (outputPath string, e *xerr.Error) {
	obraID := row.Text("id_obra")
	tl.Log(tl.Info, palette.Blue, "%s obra '%s'", "Processing", obraID)

	context := generator.Builder.Build(row)

	htmlText, renderErr := generator.Templates.RenderInforme(context)
	if renderErr != nil {
		DumpDebugHTML(generator.DebugDir, obraID, htmlText)
		return "", renderErr
	}

	outputPath, pdfErr := generator.Renderer.Render(htmlText, pdf.SafeFilename(obraID))
	if pdfErr != nil {
		DumpDebugHTML(generator.DebugDir, obraID, htmlText)
		return "", pdfErr
	}

	return outputPath, e
}

/*
GenerateAll filters rows by scope and runs the batch.
*/
func (generator *Generator) GenerateAll(rows []tabular.Row, scope string) Summary {
	filtered := tabular.FilterScope(rows, scope)

	if len(filtered) == 0 {
		tl.Log(tl.Warning, palette.PurpleBright, "No obras match scope '%s'", scope)
		return Summary{Outcomes: []RowOutcome{}}
	}

	return RunBatch(filtered, generator.ProcessRow)
}
