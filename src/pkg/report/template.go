// Package report assembles per-obra template contexts and runs the batch.
package report

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"obra-reports/src/pkg/resources"
)

// Context is the flat mapping consumed by the informe template.
type Context map[string]any

/*
Templates wraps the parsed informe template plus the header/footer chrome
wkhtmltopdf loads from disk.
*/
type Templates struct {
	informe    *template.Template
	headerPath string
	footerPath string
}

/*
LoadTemplates parses informe.html from templatesDir and remembers where the
header/footer sources live.
*/
func LoadTemplates(templatesDir string) (templates *Templates, e *xerr.Error) {
	informePath := filepath.Join(templatesDir, "informe.html")

	parsed, parseErr := template.ParseFiles(informePath)
	if parseErr != nil {
		e = xerr.NewError(parseErr, "parse informe template", informePath)
		return templates, e
	}

	templates = &Templates{
		informe:    parsed,
		headerPath: filepath.Join(templatesDir, "header.html"),
		footerPath: filepath.Join(templatesDir, "footer.html"),
	}

	tl.Log(tl.Info1, palette.Green, "Templates loaded from '%s'", templatesDir)
	return templates, e
}

/*
RenderInforme fills the informe template with one obra's context.
*/
func (templates *Templates) RenderInforme(context Context) (htmlText string, e *xerr.Error) {
	var buffer bytes.Buffer

	execErr := templates.informe.Execute(&buffer, context)
	if execErr != nil {
		e = xerr.NewError(execErr, "execute informe template", context["ID_obra"])
		return htmlText, e
	}

	return buffer.String(), e
}

/*
RenderChrome renders the header/footer HTML with the embedded banner and
footer images plus the generation timestamp, writing the results into
renderedDir for wkhtmltopdf to pick up. Missing chrome templates are
skipped: the PDF just renders without that band.
*/
func (templates *Templates) RenderChrome(bundle resources.Bundle, renderedDir string) (headerPath string, footerPath string, e *xerr.Error) {
	mkdirErr := os.MkdirAll(renderedDir, 0o755)
	if mkdirErr != nil {
		e = xerr.NewError(mkdirErr, "create rendered chrome directory", renderedDir)
		return headerPath, footerPath, e
	}

	chromeContext := Context{
		"banner_base64":    template.URL(bundle.Banner),
		"footer_base64":    template.URL(bundle.Footer),
		"fecha_generacion": time.Now().Format("02/01/2006 15:04"),
	}

	headerPath = renderChromeFile(templates.headerPath, filepath.Join(renderedDir, "header-rendered.html"), chromeContext)
	footerPath = renderChromeFile(templates.footerPath, filepath.Join(renderedDir, "footer-rendered.html"), chromeContext)

	return headerPath, footerPath, e
}

/*
renderChromeFile renders one chrome template to disk, returning the output
path or empty string when the source is absent or broken.
*/
func renderChromeFile(sourcePath string, destinationPath string, context Context) string {
	parsed, parseErr := template.ParseFiles(sourcePath)
	if parseErr != nil {
		tl.Log(tl.Info, palette.Purple, "Chrome template '%s' not available, skipping", sourcePath)
		return ""
	}

	var buffer bytes.Buffer
	execErr := parsed.Execute(&buffer, context)
	if execErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Could not render chrome template '%s': '%s'", sourcePath, execErr)
		return ""
	}

	writeErr := os.WriteFile(destinationPath, buffer.Bytes(), 0o644)
	if writeErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Could not write rendered chrome '%s': '%s'", destinationPath, writeErr)
		return ""
	}

	tl.Log(tl.Info1, palette.Green, "Rendered chrome '%s'", destinationPath)
	return destinationPath
}
