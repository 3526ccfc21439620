package report

import (
	"os"
	"path/filepath"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"obra-reports/src/pkg/tabular"
)

// RowOutcome is the explicit per-row result of a batch run.
type RowOutcome struct {
	ObraID     string
	OutputPath string
	Err        *xerr.Error
}

// Summary is what a finished batch reports.
type Summary struct {
	Successes int
	Failures  int
	Outcomes  []RowOutcome
}

// RowProcessor turns one row into one output file.
type RowProcessor func(row tabular.Row) (outputPath string, e *xerr.Error)

/*
RunBatch processes rows sequentially in source order.

Failure handling is explicit in the data model: a failed row becomes a
failed RowOutcome and the loop continues, so one bad row never aborts the
batch. Outcomes preserve input order.
*/
func RunBatch(rows []tabular.Row, process RowProcessor) Summary {
	tl.Log(tl.Notice, palette.BlueBold, "%s for '%d' obras", "Starting report batch", len(rows))

	summary := Summary{Outcomes: make([]RowOutcome, 0, len(rows))}

	for _, row := range rows {
		obraID := row.Text("id_obra")

		outputPath, processErr := process(row)
		outcome := RowOutcome{ObraID: obraID, OutputPath: outputPath, Err: processErr}
		summary.Outcomes = append(summary.Outcomes, outcome)

		if processErr != nil {
			summary.Failures += 1
			tl.Log(tl.Error, palette.RedBold, "Obra '%s' failed: '%s'", obraID, processErr)
			continue
		}

		summary.Successes += 1
	}

	tl.Log(
		tl.Notice, palette.GreenBold, "Batch finished. Successes: '%d', errors: '%d'",
		summary.Successes, summary.Failures,
	)

	return summary
}

/*
DumpDebugHTML saves the partially-rendered HTML of a failed row so the
template problem can be inspected. Best effort only.
*/
func DumpDebugHTML(debugDir string, obraID string, htmlContent string) {
	if htmlContent == "" {
		return
	}

	mkdirErr := os.MkdirAll(debugDir, 0o755)
	if mkdirErr != nil {
		return
	}

	debugPath := filepath.Join(debugDir, "error_"+obraID+".html")
	writeErr := os.WriteFile(debugPath, []byte(htmlContent), 0o644)
	if writeErr != nil {
		return
	}

	tl.Log(tl.Info, palette.Cyan, "Dumped failing HTML to '%s'", debugPath)
}
