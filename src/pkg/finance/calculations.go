// Package finance implements the per-obra financial calculations.
package finance

import (
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"obra-reports/src/pkg/format"
	"obra-reports/src/pkg/numeric"
	"obra-reports/src/pkg/util"
)

/*
RemainingUVI computes the outstanding index units of an agreement:
total - paid, floored at zero, rendered as whole-unit currency.

Either input failing to normalize yields the "--" placeholder; a bad cell
never aborts the surrounding batch.
*/
func RemainingUVI(totalUVI numeric.Raw, paidUVI numeric.Raw) string {
	total := numeric.Normalize(totalUVI)
	paid := numeric.Normalize(paidUVI)

	if total.Empty || paid.Empty {
		tl.Log(tl.Debug, palette.CyanDim, "Remaining UVI unavailable (total empty: '%v', paid empty: '%v')", total.Empty, paid.Empty)
		return numeric.Placeholder
	}

	remaining := util.ClampMin(total.Value-paid.Value, 0)
	return format.CurrencyNoDecimalsValue(remaining)
}

/*
RemainingAmount computes the outstanding balance: updated total minus the
amount already paid, floored at zero, rendered as whole-unit currency.
*/
func RemainingAmount(updatedAmount numeric.Raw, paidAmount numeric.Raw) string {
	updated := numeric.Normalize(updatedAmount)
	paid := numeric.Normalize(paidAmount)

	if updated.Empty || paid.Empty {
		tl.Log(tl.Debug, palette.CyanDim, "Remaining amount unavailable (updated empty: '%v', paid empty: '%v')", updated.Empty, paid.Empty)
		return numeric.Placeholder
	}

	remaining := util.ClampMin(updated.Value-paid.Value, 0)
	return format.CurrencyNoDecimalsValue(remaining)
}

/*
RemainingProgress computes 100 minus the current physical progress, bounded
to [0, 100] and rendered as a percentage.

Sources are inconsistent about encoding: some store 0.43 for 43%, others
store 43. A value within [0, 1] inclusive is treated as fraction-encoded and
rescaled by 100 first. A cell holding exactly 1 therefore means 100% done
(0% remaining), even though it could also have meant 1%. Kept for
compatibility with the sheets in use.
*/
func RemainingProgress(currentProgress numeric.Raw) string {
	current := numeric.Normalize(currentProgress)
	if current.Empty {
		return numeric.Placeholder
	}

	progress := current.Value
	if progress >= 0 && progress <= 1 {
		progress *= 100
	}

	remaining := util.Clamp(100-progress, 0, 100)
	return format.PercentagePointsValue(remaining)
}

/*
RemainingHouses computes the undelivered housing units: total - delivered,
floored at zero, rendered as a count.
*/
func RemainingHouses(totalHouses numeric.Raw, deliveredHouses numeric.Raw) string {
	total := numeric.Normalize(totalHouses)
	delivered := numeric.Normalize(deliveredHouses)

	if total.Empty || delivered.Empty {
		tl.Log(tl.Debug, palette.CyanDim, "Remaining houses unavailable (total empty: '%v', delivered empty: '%v')", total.Empty, delivered.Empty)
		return numeric.Placeholder
	}

	remaining := util.ClampMin(total.Value-delivered.Value, 0)
	return format.CountValue(remaining)
}

/*
UpdatedBalance revalues an agreement's outstanding index units at the daily
UVI quote: total UVI x daily value, floored at zero, rendered as currency
with decimals. An absent daily value (fetch failed for the run) yields the
placeholder for every obra in the batch.
*/
func UpdatedBalance(totalUVI numeric.Raw, dailyValue numeric.Raw) string {
	total := numeric.Normalize(totalUVI)
	value := numeric.Normalize(dailyValue)

	if total.Empty || value.Empty {
		return numeric.Placeholder
	}

	balance := util.ClampMin(total.Value*value.Value, 0)
	return format.CurrencyValue(balance)
}
