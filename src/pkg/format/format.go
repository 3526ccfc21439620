// Package format renders canonical numbers as Argentine display strings.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"obra-reports/src/pkg/numeric"
)

/*
Currency formats a raw cell as pesos with two decimals.

Example:

	1234567.89 -> "$1.234.567,89"
*/
func Currency(raw numeric.Raw) string {
	canonical := numeric.Normalize(raw)
	if canonical.Empty {
		return numeric.Placeholder
	}
	return CurrencyValue(canonical.Value)
}

func CurrencyValue(value float64) string {
	rounded := decimal.NewFromFloat(value).Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(2) // "1234567.89"
	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupThousands(parts[0], ".")

	return sign + "$" + grouped + "," + parts[1]
}

/*
CurrencyNoDecimals formats a raw cell as pesos rounded to whole units.

Example:

	1234567.89 -> "$1.234.568"
*/
func CurrencyNoDecimals(raw numeric.Raw) string {
	canonical := numeric.Normalize(raw)
	if canonical.Empty {
		return numeric.Placeholder
	}
	return CurrencyNoDecimalsValue(canonical.Value)
}

func CurrencyNoDecimalsValue(value float64) string {
	rounded := decimal.NewFromFloat(value).Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	grouped := groupThousands(rounded.StringFixed(0), ".")
	return sign + "$" + grouped
}

/*
Percentage formats a raw cell as a percentage.

Values within [0, 1] are treated as fraction-encoded and rescaled by 100
before display, so both 0.75 and 75 render as "75%". Whole percentages drop
the decimals; anything else keeps one, with a decimal comma.
*/
func Percentage(raw numeric.Raw) string {
	canonical := numeric.Normalize(raw)
	if canonical.Empty {
		return numeric.Placeholder
	}
	return PercentageValue(canonical.Value)
}

func PercentageValue(value float64) string {
	if value >= 0 && value <= 1 {
		value *= 100
	}
	return PercentagePointsValue(value)
}

/*
PercentagePointsValue formats a value already on the 0-100 scale, without the
fraction heuristic. Callers that computed the points themselves use this so a
result that happens to land in [0, 1] is not rescaled again.
*/
func PercentagePointsValue(points float64) string {
	rounded := decimal.NewFromFloat(points).Round(1)
	if rounded.IsInteger() {
		return rounded.StringFixed(0) + "%"
	}
	return strings.ReplaceAll(rounded.StringFixed(1), ".", ",") + "%"
}

/*
Count formats a raw cell as a whole quantity with thousands separators.
*/
func Count(raw numeric.Raw) string {
	canonical := numeric.Normalize(raw)
	if canonical.Empty {
		return numeric.Placeholder
	}
	return CountValue(canonical.Value)
}

func CountValue(value float64) string {
	rounded := decimal.NewFromFloat(value).Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + groupThousands(rounded.StringFixed(0), ".")
}

/*
Integer formats a raw cell as a plain integer without separators, dropping
any spurious ".0" residue spreadsheet readers tend to produce for codes.
*/
func Integer(raw numeric.Raw) string {
	canonical := numeric.Normalize(raw)
	if canonical.Empty {
		return numeric.Placeholder
	}
	return strconv.FormatInt(int64(decimal.NewFromFloat(canonical.Value).Round(0).IntPart()), 10)
}

// dateLayouts lists the formats spreadsheet date cells show up in.
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2/1/2006",
}

/*
Date formats a raw date cell as dd/mm/yyyy, trying the formats date columns
arrive in. Unparseable or absent dates render as the placeholder.
*/
func Date(raw numeric.Raw) string {
	if raw.Kind != numeric.KindText {
		return numeric.Placeholder
	}

	trimmed := strings.TrimSpace(raw.Text)
	if trimmed == "" || trimmed == numeric.Placeholder {
		return numeric.Placeholder
	}

	for _, layout := range dateLayouts {
		parsed, parseErr := time.Parse(layout, trimmed)
		if parseErr == nil {
			return parsed.Format("02/01/2006")
		}
	}

	return numeric.Placeholder
}

/*
ShortDescription extracts a compact one-line description: the first sentence,
capped at maxLength runes with an ellipsis.
*/
func ShortDescription(text string, maxLength int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == numeric.Placeholder {
		return numeric.Placeholder
	}

	if dotIndex := strings.Index(trimmed, ". "); dotIndex > 0 {
		trimmed = trimmed[:dotIndex+1]
	}

	runes := []rune(trimmed)
	if maxLength > 0 && len(runes) > maxLength {
		trimmed = string(runes[:maxLength]) + "…"
	}

	return trimmed
}

/*
groupThousands groups digits in a base-10 string using the provided separator.
*/
func groupThousands(raw string, sep string) string {
	if len(raw) <= 3 {
		return raw
	}

	var builder strings.Builder
	firstGroupLen := len(raw) % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}

	builder.WriteString(raw[:firstGroupLen])

	for index := firstGroupLen; index < len(raw); index += 3 {
		builder.WriteString(sep)
		builder.WriteString(raw[index : index+3])
	}

	return builder.String()
}
