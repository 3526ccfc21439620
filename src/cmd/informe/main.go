package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"obra-reports/src/pkg/config"
	"obra-reports/src/pkg/pdf"
	"obra-reports/src/pkg/report"
	"obra-reports/src/pkg/resources"
	"obra-reports/src/pkg/tabular"
	"obra-reports/src/pkg/uvi"
)

// Columns the pipeline reads from the obras sheet. Missing ones only warn,
// the affected fields show as "--" in the PDFs.
var requiredColumns = []string{
	"id_obra",
	"descripcion",
	"estado",
	"municipio",
	"localidad",
	"viv_totales",
	"viv_entregadas",
	"porcentaje_avance_fisico",
	"monto_convenio",
	"cantidad_uvis",
}

/*
main runs the full informe pipeline.

For each obra row in the source spreadsheet:
 1. Build the template context (formatted fields, daily UVI, images, noticias)
 2. Render informe.html
 3. Render the PDF with wkhtmltopdf

One bad row never kills the run; the summary at the end reports counts.
*/
func main() {
	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	source := flag.String("source", "excel", "Data source: 'excel' (local workbook) or 'sheets' (published Google Sheet).")
	excelPath := flag.String("excel", "", "Path to the obras workbook. Overrides the configured excel_path.")
	scope := flag.String("scope", tabular.ScopeTodas, "Which obras to process: OTRAS, CONVE or TODAS.")
	outputDirPath := flag.String("out", "", "Directory where PDFs will be stored. Overrides the configured output_dir.")

	flag.Parse()
	config.InitializeConfig(*configPath)

	if *excelPath == "" {
		*excelPath = config.Cfg.ExcelPath
	}
	if *outputDirPath == "" {
		*outputDirPath = config.Cfg.OutputDir
	}

	tl.Log(
		tl.Notice, palette.BlueBold, "%s entrypoint. Config path: '%s'",
		"Running informe pipeline", *configPath,
	)
	tl.Log(
		tl.Info1, palette.Cyan, "%s '%s' (scope '%s')",
		"Using output directory", *outputDirPath, *scope,
	)

	rows := loadRows(*source, *excelPath)
	if len(rows) == 0 {
		tl.Log(tl.Warning, palette.PurpleBold, "No obra rows found in source '%s'", *source)
		os.Exit(0)
	}
	tabular.ValidateColumns(rows, requiredColumns)

	tl.Log(tl.Notice1, palette.GreenBold, "Found '%d' obra rows to process", len(rows))

	// Visual assets, best effort. Missing ones leave gaps in the PDF.
	bundle := resources.Prepare(config.Cfg.AssetsDir)

	templates, e := report.LoadTemplates(config.Cfg.TemplatesDir)
	e.QuitIf("error")

	renderedDir := filepath.Join(*outputDirPath, "rendered")
	headerPath, footerPath, e := templates.RenderChrome(bundle, renderedDir)
	e.QuitIf("error")

	renderer, e := pdf.NewRenderer(config.Cfg.WkhtmltopdfPath, *outputDirPath, headerPath, footerPath)
	e.QuitIf("error")

	generator := report.Generator{
		Builder: &report.Builder{
			Bundle:    bundle,
			ImagesDir: config.Cfg.ImagesDir,
			Daily:     uvi.NewDailyValue(uvi.NewFetcher()),
			News:      newsSource(),
		},
		Templates: templates,
		Renderer:  renderer,
		DebugDir:  filepath.Join(*outputDirPath, "debug"),
	}

	summary := generator.GenerateAll(rows, strings.ToUpper(strings.TrimSpace(*scope)))

	tl.Log(
		tl.Notice, palette.GreenBold, "Done. Generated: '%d', failed: '%d'",
		summary.Successes, summary.Failures,
	)
	if summary.Failures > 0 {
		os.Exit(1)
	}
}

/*
loadRows reads the obra rows from the configured source.
*/
func loadRows(source string, excelPath string) []tabular.Row {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "sheets":
		sheetSource := tabular.NewSheetSource()
		rows, e := sheetSource.ReadSheet(config.Cfg.ObrasSheetID, config.Cfg.ObrasSheetName)
		e.QuitIf("error")
		return rows
	default:
		rows, e := tabular.ReadWorkbook(excelPath, config.Cfg.SheetName, config.Cfg.HeaderRow)
		e.QuitIf("error")
		return rows
	}
}

/*
newsSource wires the noticias sheet when one is configured; otherwise the
reports just render without the noticias section.
*/
func newsSource() report.NewsSource {
	if config.Cfg.NoticiasSheetID == "" {
		tl.Log(tl.Info, palette.Purple, "%s not configured, reports render %s", "noticias_sheet_id", "without noticias")
		return report.NoNews{}
	}
	return &sheetNews{source: tabular.NewSheetSource()}
}

type sheetNews struct {
	source *tabular.SheetSource
}

func (news *sheetNews) NoticiasForObra(obraID string) []tabular.Noticia {
	return news.source.Noticias(config.Cfg.NoticiasSheetID, config.Cfg.NoticiasSheetName, obraID)
}
