package uvi

import (
	"strconv"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"obra-reports/src/pkg/numeric"
)

// ValueFetcher is the source of the daily quote; satisfied by *Fetcher and
// by test doubles.
type ValueFetcher interface {
	FetchDailyValue() (value string, ok bool)
}

/*
DailyValue memoizes the daily UVI quote for one batch run.

The fetch happens at most once per run, even when it fails: a dead API is
not retried per obra, every row just sees the same absence. Construct one
per run and pass it by reference to the row-processing code; there is no
eviction, TTL, or cross-run persistence.
*/
type DailyValue struct {
	fetcher ValueFetcher
	fetched bool
	value   string
	ok      bool
}

func NewDailyValue(fetcher ValueFetcher) *DailyValue {
	return &DailyValue{fetcher: fetcher}
}

/*
Get returns the cached daily value, fetching it on first use.
*/
func (daily *DailyValue) Get() (value string, ok bool) {
	if !daily.fetched {
		daily.fetched = true
		daily.value, daily.ok = daily.fetcher.FetchDailyValue()

		if daily.ok {
			tl.Log(tl.Info1, palette.Green, "Cached daily UVI value '%s' for this run", daily.value)
		} else {
			tl.Log(tl.Warning, palette.PurpleBright, "%s for this run", "No daily UVI value available")
		}
	}

	return daily.value, daily.ok
}

/*
Raw adapts the cached value to the normalizer's input domain.

The API speaks JSON, so the value string uses a '.' decimal point; it must
be parsed here rather than fed through the Latin-format text normalizer,
which would read the dot as a thousands separator.
*/
func (daily *DailyValue) Raw() numeric.Raw {
	value, ok := daily.Get()
	if !ok {
		return numeric.Missing()
	}

	parsed, parseErr := strconv.ParseFloat(value, 64)
	if parseErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Daily UVI value '%s' is not numeric", value)
		return numeric.Missing()
	}

	return numeric.FromNumber(parsed)
}
