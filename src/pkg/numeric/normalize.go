// Package numeric turns heterogeneous cell values into canonical numbers.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Placeholder is the literal used across all output fields for "value unavailable".
// Input cells may also carry it, in which case they classify as missing.
const Placeholder = "--"

// RawKind tags the source representation of a cell value.
type RawKind int

const (
	KindMissing RawKind = iota
	KindNumber
	KindText
)

/*
Raw is a single cell value as produced by a tabular source.

It is an explicit tagged union so that "placeholder string" and "genuinely
absent" both funnel through one classification step instead of ad hoc
equality checks at every call site.
*/
type Raw struct {
	Kind   RawKind
	Number float64
	Text   string
}

func Missing() Raw {
	return Raw{Kind: KindMissing}
}

func FromNumber(value float64) Raw {
	return Raw{Kind: KindNumber, Number: value}
}

func FromText(text string) Raw {
	return Raw{Kind: KindText, Text: text}
}

/*
FromAny classifies an arbitrary cell value (as returned by spreadsheet
readers) into a Raw. Unknown types classify as missing rather than guessing.
*/
func FromAny(value any) Raw {
	switch typed := value.(type) {
	case nil:
		return Missing()
	case string:
		return FromText(typed)
	case float64:
		return FromNumber(typed)
	case float32:
		return FromNumber(float64(typed))
	case int:
		return FromNumber(float64(typed))
	case int64:
		return FromNumber(float64(typed))
	case int32:
		return FromNumber(float64(typed))
	case uint:
		return FromNumber(float64(typed))
	case bool:
		if typed {
			return FromNumber(1)
		}
		return FromNumber(0)
	default:
		return Missing()
	}
}

/*
Canonical is a cleaned, locale-independent numeric value or an explicit
absence marker. A Canonical is never NaN or infinite: any such result during
normalization becomes Empty instead.
*/
type Canonical struct {
	Value float64
	Empty bool
}

func EmptyValue() Canonical {
	return Canonical{Empty: true}
}

func ValueOf(value float64) Canonical {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return EmptyValue()
	}
	return Canonical{Value: value}
}

/*
Normalize parses a Raw into a Canonical.

Text is interpreted under the Latin-American convention: '.' is a thousands
separator and ',' is the decimal separator, so "1.234,56" parses as 1234.56.
A missing cell, a blank string, the "--" placeholder, or a malformed string
all yield Empty. Normalization never fails the caller.
*/
func Normalize(raw Raw) Canonical {
	switch raw.Kind {
	case KindMissing:
		return EmptyValue()
	case KindNumber:
		return ValueOf(raw.Number)
	case KindText:
		return normalizeText(raw.Text)
	default:
		return EmptyValue()
	}
}

func normalizeText(text string) Canonical {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == Placeholder {
		return EmptyValue()
	}

	// Remove thousands separators, then promote the decimal comma.
	cleaned := strings.ReplaceAll(trimmed, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	parsed, parseErr := strconv.ParseFloat(cleaned, 64)
	if parseErr != nil {
		return EmptyValue()
	}

	return ValueOf(parsed)
}
