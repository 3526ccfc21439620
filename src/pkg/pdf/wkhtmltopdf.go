// Package pdf converts rendered HTML into PDF files with wkhtmltopdf.
package pdf

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
Renderer shells out to wkhtmltopdf, reading HTML on stdin.

Construction fails when the binary cannot be found: no partial output is
meaningful without a working renderer, so misconfiguration aborts the run
before any row is processed.
*/
type Renderer struct {
	BinaryPath     string
	OutputDir      string
	HeaderHTMLPath string
	FooterHTMLPath string
}

func NewRenderer(binaryPath string, outputDir string, headerHTMLPath string, footerHTMLPath string) (renderer *Renderer, e *xerr.Error) {
	resolvedPath, lookErr := exec.LookPath(binaryPath)
	if lookErr != nil {
		e = xerr.NewError(lookErr, "locate wkhtmltopdf binary", binaryPath)
		return renderer, e
	}

	mkdirErr := os.MkdirAll(outputDir, 0o755)
	if mkdirErr != nil {
		e = xerr.NewError(mkdirErr, "create PDF output directory", outputDir)
		return renderer, e
	}

	renderer = &Renderer{
		BinaryPath:     resolvedPath,
		OutputDir:      outputDir,
		HeaderHTMLPath: headerHTMLPath,
		FooterHTMLPath: footerHTMLPath,
	}

	tl.Log(tl.Info1, palette.Green, "PDF renderer ready ('%s', output '%s')", resolvedPath, outputDir)
	return renderer, e
}

/*
Render writes one PDF from HTML content and returns the output path.
*/
func (renderer *Renderer) Render(htmlContent string, filename string) (outputPath string, e *xerr.Error) {
	outputPath = filepath.Join(renderer.OutputDir, filename)

	args := []string{
		"--encoding", "utf-8",
		"--enable-local-file-access",
		"--margin-top", "30mm",
		"--margin-bottom", "20mm",
		"--margin-left", "4mm",
		"--margin-right", "4mm",
	}
	if renderer.HeaderHTMLPath != "" {
		args = append(args, "--header-html", renderer.HeaderHTMLPath)
	}
	if renderer.FooterHTMLPath != "" {
		args = append(args, "--footer-html", renderer.FooterHTMLPath)
	}
	args = append(args, "-", outputPath) // read HTML from stdin

	command := exec.Command(renderer.BinaryPath, args...)
	command.Stdin = strings.NewReader(htmlContent)

	output, runErr := command.CombinedOutput()
	if runErr != nil {
		e = xerr.NewError(runErr, "run wkhtmltopdf", string(output))
		return outputPath, e
	}

	tl.Log(tl.Info1, palette.Green, "%s '%s'", "PDF generated:", outputPath)
	return outputPath, e
}

var unsafeFilenameChars = regexp.MustCompile(`[\\/*?:"<>|]`)

/*
SafeFilename builds the per-obra output filename, stripping characters that
are unsafe in filenames.
*/
func SafeFilename(obraID string) string {
	base := "informe_" + strings.TrimSpace(obraID)
	safe := unsafeFilenameChars.ReplaceAllString(base, "")

	if !strings.HasSuffix(safe, ".pdf") {
		safe += ".pdf"
	}
	return safe
}
