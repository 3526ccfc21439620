package report

import (
	"html/template"

	"obra-reports/src/pkg/finance"
	"obra-reports/src/pkg/format"
	"obra-reports/src/pkg/numeric"
	"obra-reports/src/pkg/resources"
	"obra-reports/src/pkg/tabular"
	"obra-reports/src/pkg/uvi"
)

const shortDescriptionMax = 180

// NewsSource supplies press items for one obra; failures inside the source
// must degrade to an empty list.
type NewsSource interface {
	NoticiasForObra(obraID string) []tabular.Noticia
}

// NoNews is the NewsSource used when no noticias sheet is configured.
type NoNews struct{}

func (NoNews) NoticiasForObra(obraID string) []tabular.Noticia {
	return []tabular.Noticia{}
}

/*
Builder assembles the flat template context for one obra row.

All shared run state (visual assets, the memoized daily UVI value, the news
source) is held here so the per-row work stays a pure mapping from row
fields to display strings.
*/
type Builder struct {
	Bundle    resources.Bundle
	ImagesDir string
	Daily     *uvi.DailyValue
	News      NewsSource
}

/*
Build maps one row to the context consumed by the informe template.

Derived fields run through the calculator and degrade to "--" individually;
auxiliary lookups (images, noticias) degrade to empty values. Build itself
cannot fail a row; row-level failures surface later, at render time.
*/
func (builder *Builder) Build(row tabular.Row) Context {
	obraID := row.Text("id_obra")

	principal, extras := resources.WorkImages(obraID, builder.ImagesDir)

	news := builder.News
	if news == nil {
		news = NoNews{}
	}
	noticias := news.NoticiasForObra(obraID)

	dailyRaw := numeric.Missing()
	dailyFormatted := numeric.Placeholder
	if builder.Daily != nil {
		dailyRaw = builder.Daily.Raw()
		if dailyRaw.Kind == numeric.KindNumber {
			dailyFormatted = format.CurrencyValue(dailyRaw.Number)
		}
	}

	extraURLs := make([]template.URL, 0, len(extras))
	for _, extra := range extras {
		extraURLs = append(extraURLs, template.URL(extra))
	}

	context := Context{
		// Recursos visuales
		"banner_path":    template.URL(builder.Bundle.Banner),
		"footer_path":    template.URL(builder.Bundle.Footer),
		"doble_flecha":   template.URL(builder.Bundle.DobleFlecha),
		"fuente_regular": builder.Bundle.FuenteRegular,
		"fuente_bold":    builder.Bundle.FuenteBold,

		// Datos basicos
		"ID_obra":           obraID,
		"ID_historico":      row.Text("id_historico"),
		"Memoria_Descriptiva": row.Text("descripcion"),
		"Descripcion_Corta": format.ShortDescription(row.Text("descripcion"), shortDescriptionMax),
		"Imagen_Obra":       template.URL(principal),
		"Imagenes_Extra":    extraURLs,
		"Estado":            row.Text("estado"),
		"Municipio":         row.Text("municipio"),
		"Localidad":         row.Text("localidad"),
		"Modalidad":         row.Text("modalidad"),
		"Programa":          row.Text("programa"),
		"Solicitante_Financiamiento": row.Text("solicitante_financiero"),
		"Solicitante_Presupuestario": row.Text("solicitante_presupuestario"),
		"noticias":          noticias,

		// Codigos
		"Cod_emprendimiento": format.Integer(row.Raw("emprendimiento_incluidos")),
		"Cod_obra":           format.Integer(row.Raw("codigos_incluidos")),
		"Exp_GDEBA":          row.Text("expediente_gdeba"),

		// Viviendas
		"Viviendas_Totales":    format.Count(row.Raw("viv_totales")),
		"Viviendas_Entregadas": format.Count(row.Raw("viv_entregadas")),
		"Viviendas_Restantes":  finance.RemainingHouses(row.Raw("viv_totales"), row.Raw("viv_entregadas")),

		// Avances
		"Avance_fisico":     format.Percentage(row.Raw("porcentaje_avance_fisico")),
		"Avance_Restante":   finance.RemainingProgress(row.Raw("porcentaje_avance_fisico")),
		"Avance_financiero": format.Percentage(row.Raw("avance_financiero")),

		// Informacion financiera
		"Monto_Convenio": format.Currency(row.Raw("monto_convenio")),
		"Fecha_UVI":      format.Date(row.Raw("fecha_cotizacion_uvi_convenio")),
		"Total_UVI":      format.Count(row.Raw("cantidad_uvis")),
		"Uvis_Restantes": finance.RemainingUVI(row.Raw("cantidad_uvis"), row.Raw("uvi_pagado")),

		// Montos
		"Monto_Restante_Actualizado": finance.RemainingAmount(row.Raw("monto_actualizado"), row.Raw("monto_pagado")),
		"Monto_Devengado":            format.Currency(row.Raw("monto_devengado")),
		"Monto_Pagado":               format.Currency(row.Raw("monto_pagado")),
		"Fecha_ultimo_pago":          format.Date(row.Raw("fecha_ultimo_pago")),

		// Saldo revaluado al UVI del dia
		"Saldo_Obra_Actualizado":      finance.UpdatedBalance(row.Raw("cantidad_uvis"), dailyRaw),
		"Valor_UVI_Diario_Formateado": dailyFormatted,
	}

	return context
}
