// Package uvi fetches the daily UVI quote from the BCRA statistics API.
package uvi

import (
	"encoding/json"
	"net/http"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

const (
	PrimaryURL  = "https://api.bcra.gob.ar/estadisticas/v2.0/PrincipalesVariables"
	FallbackURL = "https://api.bcra.gob.ar/estadisticas/v2.0/datosvariable/100"

	PrimaryTimeout  = 10 * time.Second // main endpoint gets the larger budget
	FallbackTimeout = 5 * time.Second

	// UVIVariableID is the BCRA series id for the UVI in PrincipalesVariables.
	UVIVariableID = 100
)

/*
Fetcher retrieves the daily UVI value, best effort.

It tries the main PrincipalesVariables endpoint first and falls back to the
per-variable series endpoint. Both failing is not an error condition for the
caller: the batch continues and index-dependent fields render as "--".
*/
type Fetcher struct {
	PrimaryEndpoint  string
	FallbackEndpoint string
	PrimaryTimeout   time.Duration
	FallbackTimeout  time.Duration
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		PrimaryEndpoint:  PrimaryURL,
		FallbackEndpoint: FallbackURL,
		PrimaryTimeout:   PrimaryTimeout,
		FallbackTimeout:  FallbackTimeout,
	}
}

type variableEntry struct {
	IDVariable int         `json:"idVariable"`
	Fecha      string      `json:"fecha"`
	Valor      json.Number `json:"valor"`
}

type variablesResponse struct {
	Results []variableEntry `json:"results"`
}

/*
FetchDailyValue returns the UVI value as its string representation, plus
whether any source produced one.
*/
func (fetcher *Fetcher) FetchDailyValue() (value string, ok bool) {
	tl.Log(tl.Info, palette.Blue, "%s daily UVI value from '%s'", "Fetching", fetcher.PrimaryEndpoint)

	value, ok = fetcher.fetchFromPrimary()
	if ok {
		tl.Log(tl.Info1, palette.Green, "Daily UVI value from primary source: '%s'", value)
		return value, ok
	}

	tl.Log(tl.Info, palette.Cyan, "%s, trying fallback '%s'", "Primary UVI source unavailable", fetcher.FallbackEndpoint)

	value, ok = fetcher.fetchFromFallback()
	if ok {
		tl.Log(tl.Info1, palette.Green, "Daily UVI value from fallback source: '%s'", value)
		return value, ok
	}

	tl.Log(tl.Warning, palette.PurpleBright, "%s; index-dependent fields will render as '%s'", "No UVI source responded", "--")
	return "", false
}

/*
fetchFromPrimary scans the PrincipalesVariables listing for the UVI series.
*/
func (fetcher *Fetcher) fetchFromPrimary() (value string, ok bool) {
	body, fetchErr := fetchJSON(fetcher.PrimaryEndpoint, fetcher.PrimaryTimeout)
	if fetchErr != nil {
		tl.Log(tl.Debug, palette.CyanDim, "Primary UVI fetch failed: '%s'", fetchErr)
		return "", false
	}

	var parsed variablesResponse
	decodeErr := json.Unmarshal(body, &parsed)
	if decodeErr != nil {
		tl.Log(tl.Debug, palette.CyanDim, "Primary UVI response unparseable: '%s'", decodeErr)
		return "", false
	}

	for _, entry := range parsed.Results {
		if entry.IDVariable == UVIVariableID && entry.Valor != "" {
			return entry.Valor.String(), true
		}
	}

	tl.Log(tl.Debug, palette.CyanDim, "UVI variable '%d' not present in primary response", UVIVariableID)
	return "", false
}

/*
fetchFromFallback reads the most recent entry of the UVI series endpoint.
*/
func (fetcher *Fetcher) fetchFromFallback() (value string, ok bool) {
	body, fetchErr := fetchJSON(fetcher.FallbackEndpoint, fetcher.FallbackTimeout)
	if fetchErr != nil {
		tl.Log(tl.Debug, palette.CyanDim, "Fallback UVI fetch failed: '%s'", fetchErr)
		return "", false
	}

	var parsed variablesResponse
	decodeErr := json.Unmarshal(body, &parsed)
	if decodeErr != nil {
		tl.Log(tl.Debug, palette.CyanDim, "Fallback UVI response unparseable: '%s'", decodeErr)
		return "", false
	}

	if len(parsed.Results) == 0 || parsed.Results[0].Valor == "" {
		return "", false
	}

	return parsed.Results[0].Valor.String(), true
}

/*
fetchJSON performs a bounded GET and returns the decoded body bytes.
Non-2xx statuses count as failures.
*/
func fetchJSON(url string, timeout time.Duration) (body []byte, err error) {
	req, newReqErr := http.NewRequest("GET", url, nil)
	if newReqErr != nil {
		return nil, newReqErr
	}
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: timeout}
	resp, httpErr := client.Do(req)
	if httpErr != nil {
		return nil, httpErr
	}
	defer resp.Body.Close()

	body, readErr := readBody(resp, url)
	if readErr != nil {
		return nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError{status: resp.Status, url: url}
	}

	return body, nil
}

type statusError struct {
	status string
	url    string
}

func (e statusError) Error() string {
	return "unexpected status " + e.status + " from " + e.url
}
