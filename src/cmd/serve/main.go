package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"obra-reports/src/pkg/config"
	echomw "obra-reports/src/pkg/echo-middleware"
)

/*
main serves the generated informe PDFs over HTTP.

Routes:

	GET /health            liveness probe, no auth
	GET /informes/...      static PDFs from the output directory, bearer auth

Set INFORMES_BEARER_TOKEN to enable downloads; without it every /informes
request is rejected.
*/
func main() {
	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	address := flag.String("address", "", "Address to listen on. Overrides the middleware default.")
	port := flag.Int("port", 0, "Port to listen on. Overrides the middleware default.")

	flag.Parse()
	config.InitializeConfig(*configPath)
	echomw.InitializeConfig(nil)

	if *address != "" {
		echomw.Cfg.Address = *address
	}
	if *port != 0 {
		echomw.Cfg.Port = *port
	}

	tl.Log(
		tl.Notice, palette.BlueBold, "%s entrypoint. Config path: '%s'",
		"Running informes server", *configPath,
	)

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(echomw.RouteAccessLoggerMiddleware)
	server.Use(echomw.RateLimiterMiddleware)

	server.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	informes := server.Group("/informes", echomw.RequireBearerToken)
	informes.Static("/", config.Cfg.OutputDir)

	listenAddress := fmt.Sprintf("%s:%d", echomw.Cfg.Address, echomw.Cfg.Port)
	tl.Log(
		tl.Notice1, palette.GreenBold, "Serving informes from '%s' on '%s'",
		config.Cfg.OutputDir, listenAddress,
	)

	xerr.QuitIfError(server.Start(listenAddress), "Unable to start informes server")
}
