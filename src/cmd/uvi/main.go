package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"obra-reports/src/pkg/config"
	"obra-reports/src/pkg/uvi"
)

/*
main fetches today's UVI value from the BCRA API and prints it.

Useful for checking connectivity to the BCRA endpoints before a report run.
Exits 1 when both the primary and the fallback endpoint fail.
*/
func main() {
	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	primaryTimeout := flag.Duration("primary-timeout", 0, "Override the primary endpoint timeout (for example 3s).")

	flag.Parse()
	config.InitializeConfig(*configPath)

	tl.Log(tl.Notice, palette.BlueBold, "%s entrypoint", "Fetching daily UVI value")

	fetcher := uvi.NewFetcher()
	if *primaryTimeout > time.Duration(0) {
		fetcher.PrimaryTimeout = *primaryTimeout
	}

	value, ok := fetcher.FetchDailyValue()
	if !ok {
		tl.Log(tl.Error, palette.RedBold, "%s, both endpoints failed", "Could not fetch the daily UVI value")
		os.Exit(1)
	}

	tl.Log(tl.Notice1, palette.GreenBold, "Daily UVI value: '%s'", value)
	fmt.Println(value)
}
