package finance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"obra-reports/src/pkg/numeric"
)

func TestRemainingUVI(t *testing.T) {
	assert.Equal(t, "$1.500", RemainingUVI(numeric.FromText("2.000"), numeric.FromText("500")))
	assert.Equal(t, "$0", RemainingUVI(numeric.FromNumber(100), numeric.FromNumber(350)))
}

func TestRemainingAmount(t *testing.T) {
	assert.Equal(t, "$765.432", RemainingAmount(numeric.FromText("1.000.000"), numeric.FromText("234.568")))
	assert.Equal(t, "$0", RemainingAmount(numeric.FromNumber(10), numeric.FromNumber(10)))
}

func TestRemainingProgress(t *testing.T) {
	assert.Equal(t, "50%", RemainingProgress(numeric.FromNumber(50)))
	assert.Equal(t, "50%", RemainingProgress(numeric.FromNumber(0.5)))
	assert.Equal(t, "25%", RemainingProgress(numeric.FromText("0,75")))
	assert.Equal(t, "0,5%", RemainingProgress(numeric.FromNumber(99.5)))

	// A cell holding exactly 1 counts as fraction-encoded 100%.
	assert.Equal(t, "0%", RemainingProgress(numeric.FromNumber(1)))

	// Out-of-range progress stays bounded.
	assert.Equal(t, "0%", RemainingProgress(numeric.FromNumber(140)))
}

func TestRemainingHouses(t *testing.T) {
	assert.Equal(t, "1.480", RemainingHouses(numeric.FromText("1.500"), numeric.FromText("20")))
	assert.Equal(t, "0", RemainingHouses(numeric.FromNumber(5), numeric.FromNumber(9)))
}

func TestUpdatedBalance(t *testing.T) {
	assert.Equal(t, "$2.500,50", UpdatedBalance(numeric.FromText("1.000"), numeric.FromText("2,5005")))
	assert.Equal(t, "--", UpdatedBalance(numeric.FromText("1.000"), numeric.Missing()))
	assert.Equal(t, "--", UpdatedBalance(numeric.Missing(), numeric.FromText("2,5")))
}

func TestEmptyPropagation(t *testing.T) {
	empties := []numeric.Raw{
		numeric.Missing(),
		numeric.FromText(""),
		numeric.FromText("--"),
		numeric.FromText("abc"),
	}

	for _, empty := range empties {
		assert.Equal(t, "--", RemainingUVI(empty, numeric.FromNumber(1)))
		assert.Equal(t, "--", RemainingUVI(numeric.FromNumber(1), empty))
		assert.Equal(t, "--", RemainingAmount(empty, numeric.FromNumber(1)))
		assert.Equal(t, "--", RemainingAmount(numeric.FromNumber(1), empty))
		assert.Equal(t, "--", RemainingProgress(empty))
		assert.Equal(t, "--", RemainingHouses(empty, numeric.FromNumber(1)))
		assert.Equal(t, "--", RemainingHouses(numeric.FromNumber(1), empty))
	}
}

func TestResultsNeverNegative(t *testing.T) {
	results := []string{
		RemainingUVI(numeric.FromNumber(0), numeric.FromNumber(1e9)),
		RemainingAmount(numeric.FromNumber(0), numeric.FromNumber(1e9)),
		RemainingHouses(numeric.FromNumber(0), numeric.FromNumber(1e9)),
		RemainingProgress(numeric.FromNumber(250)),
	}

	for _, result := range results {
		assert.False(t, strings.HasPrefix(result, "-"), "result %q is negative", result)
	}
}
