package tabular

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

const sheetExportBaseURL = "https://docs.google.com/spreadsheets/d"

/*
SheetSource reads published Google Sheets through their CSV export URL.

The sheets used here are link-published, so no credentialed API client is
involved; a bounded per-request timeout is the only network defense.
*/
type SheetSource struct {
	BaseURL string
	Timeout time.Duration
}

func NewSheetSource() *SheetSource {
	return &SheetSource{
		BaseURL: sheetExportBaseURL,
		Timeout: 10 * time.Second,
	}
}

/*
ReadSheet downloads one worksheet as CSV and converts it to Rows. The first
CSV record is the header.
*/
func (source *SheetSource) ReadSheet(sheetID string, sheetName string) (rows []Row, e *xerr.Error) {
	exportURL := fmt.Sprintf(
		"%s/%s/gviz/tq?tqx=out:csv&sheet=%s",
		source.BaseURL, url.PathEscape(sheetID), url.QueryEscape(sheetName),
	)

	tl.Log(tl.Info, palette.Blue, "%s sheet '%s' ('%s')", "Downloading", sheetName, sheetID)

	client := &http.Client{Timeout: source.Timeout}
	resp, httpErr := client.Get(exportURL)
	if httpErr != nil {
		e = xerr.NewError(httpErr, "download sheet CSV export", exportURL)
		return rows, e
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("status is '%s'", resp.Status)
		e = xerr.NewError(err, "sheet CSV export rejected", exportURL)
		return rows, e
	}

	records, readErr := csv.NewReader(resp.Body).ReadAll()
	if readErr != nil {
		e = xerr.NewError(readErr, "parse sheet CSV export", sheetName)
		return rows, e
	}

	if len(records) == 0 {
		return rows, e
	}

	rows = RowsFromCells(records[0], records[1:])
	tl.Log(tl.Info1, palette.Green, "Sheet loaded: '%d' rows from '%s'", len(rows), sheetName)
	return rows, e
}

// Noticia is one news item attached to an obra.
type Noticia struct {
	IDObra               string `json:"id_obra"`
	DescripcionMunicipio string `json:"descripcion_municipio"`
	Diario               string `json:"diario"`
	Titulo               string `json:"titulo_noticia"`
	Link                 string `json:"link_noticia"`
	Copete               string `json:"copete"`
}

/*
Noticias returns the news items for one obra. Any failure degrades to an
empty list: missing press coverage never fails a report.
*/
func (source *SheetSource) Noticias(sheetID string, sheetName string, obraID string) []Noticia {
	rows, readErr := source.ReadSheet(sheetID, sheetName)
	if readErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Could not load noticias for '%s': '%s'", obraID, readErr)
		return []Noticia{}
	}

	return NoticiasFromRows(rows, obraID)
}

/*
NoticiasFromRows filters already-loaded news rows down to one obra.
*/
func NoticiasFromRows(rows []Row, obraID string) []Noticia {
	noticias := make([]Noticia, 0)

	for _, row := range rows {
		if row.Text("id_obra") != obraID {
			continue
		}

		noticias = append(noticias, Noticia{
			IDObra:               obraID,
			DescripcionMunicipio: row.Text("descripcion_municipio"),
			Diario:               row.Text("diario"),
			Titulo:               row.Text("titulo_noticia"),
			Link:                 row.Text("link_noticia"),
			Copete:               row.Text("copete"),
		})
	}

	return noticias
}
