package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"obra-reports/src/pkg/numeric"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$1.234.567,89", CurrencyValue(1234567.89))
	assert.Equal(t, "$0,50", CurrencyValue(0.5))
	assert.Equal(t, "-$12,00", CurrencyValue(-12))
	assert.Equal(t, "$1.234,56", Currency(numeric.FromText("1.234,56")))
	assert.Equal(t, "--", Currency(numeric.Missing()))
	assert.Equal(t, "--", Currency(numeric.FromText("--")))
}

func TestCurrencyNoDecimals(t *testing.T) {
	assert.Equal(t, "$1.234.568", CurrencyNoDecimalsValue(1234567.89))
	assert.Equal(t, "$71.630", CurrencyNoDecimalsValue(71630))
	assert.Equal(t, "--", CurrencyNoDecimals(numeric.FromText("abc")))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "75%", PercentageValue(75))
	assert.Equal(t, "75%", PercentageValue(0.75))
	assert.Equal(t, "12,5%", PercentageValue(12.5))
	assert.Equal(t, "100%", PercentageValue(1))
	assert.Equal(t, "--", Percentage(numeric.Missing()))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1.500", CountValue(1500))
	assert.Equal(t, "12", CountValue(12.4))
	assert.Equal(t, "--", Count(numeric.FromText("")))
}

func TestInteger(t *testing.T) {
	assert.Equal(t, "1045", Integer(numeric.FromNumber(1045.0)))
	assert.Equal(t, "7", Integer(numeric.FromText("7")))
	assert.Equal(t, "--", Integer(numeric.Missing()))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "05/03/2024", Date(numeric.FromText("05/03/2024")))
	assert.Equal(t, "05/03/2024", Date(numeric.FromText("2024-03-05")))
	assert.Equal(t, "--", Date(numeric.FromText("not a date")))
	assert.Equal(t, "--", Date(numeric.Missing()))
}

func TestShortDescription(t *testing.T) {
	assert.Equal(t, "Obra de 120 viviendas.", ShortDescription("Obra de 120 viviendas. Segunda etapa en curso.", 100))
	assert.Equal(t, "--", ShortDescription("   ", 100))

	long := ShortDescription("abcdefghij", 5)
	assert.Equal(t, "abcde…", long)
}
