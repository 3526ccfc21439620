// Package config loads the JSON run configuration and checks the environment.
package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/joho/godotenv"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

type Config struct {
	ExcelPath       string `json:"excel_path,omitempty"`
	SheetName       string `json:"sheet_name,omitempty"`
	HeaderRow       int    `json:"header_row,omitempty"`
	OutputDir       string `json:"output_dir,omitempty"`
	AssetsDir       string `json:"assets_dir,omitempty"`
	ImagesDir       string `json:"images_dir,omitempty"`
	TemplatesDir    string `json:"templates_dir,omitempty"`
	WkhtmltopdfPath string `json:"wkhtmltopdf_path,omitempty"`

	ObrasSheetID      string `json:"obras_sheet_id,omitempty"`
	ObrasSheetName    string `json:"obras_sheet_name,omitempty"`
	NoticiasSheetID   string `json:"noticias_sheet_id,omitempty"`
	NoticiasSheetName string `json:"noticias_sheet_name,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		ExcelPath:         "./data/obras.xlsx",
		SheetName:         "",
		HeaderRow:         1,
		OutputDir:         "./out",
		AssetsDir:         "./assets",
		ImagesDir:         "./assets/imagenes-obras",
		TemplatesDir:      "./templates",
		WkhtmltopdfPath:   "wkhtmltopdf",
		ObrasSheetName:    "Obras",
		NoticiasSheetName: "Noticias",
	}
}

// create config with default values before config gets initialized
var Cfg Config = DefaultValueConfig() // this one we use to access config values from anywhere

func GetPackageName() string {
	return "config"
}

/*
InitializeConfig loads .env (best effort), reads the JSON config file, and
fills any missing values from defaults.

A missing config file keeps the defaults and logs a note; a malformed one is
a setup failure and aborts the run.
*/
func InitializeConfig(configPath string) {
	dotenvErr := godotenv.Load()
	if dotenvErr == nil {
		tl.Log(tl.Info, palette.Purple, "%s file loaded", ".env")
	}

	fileBytes, readErr := os.ReadFile(configPath)
	if readErr != nil {
		tl.Log(tl.Info, palette.Purple, "Config file '%s' not readable, keeping %s", configPath, "default config")
		return
	}

	var loaded Config
	unmarshalErr := json.Unmarshal(fileBytes, &loaded)
	xerr.QuitIfError(unmarshalErr, "parse config file "+configPath)

	Cfg = loaded

	defaultConfig := DefaultValueConfig()
	tl.ApplyDefaults(&Cfg, defaultConfig, func(field string, defVal any) {
		tl.Log(
			tl.Info, palette.Purple,
			"Config field '%s' is %s in %s, default is %s",
			field, "missing", GetPackageName(), tl.PrettyForStderr(defVal),
		)
	})

	tl.Log(tl.Info1, palette.Green, "Config initialized from '%s'", configPath)
}

/*
CheckIfEnvVarsPresent logs every missing env var and exits(1) if any were
missing. Call it before doing any work that needs credentials.
*/
func CheckIfEnvVarsPresent(names ...string) {
	missing := false
	for _, name := range names {
		if strings.TrimSpace(os.Getenv(name)) == "" {
			tl.Log(tl.Warning, palette.YellowBold, "Environment variable %s is %s", name, "required")
			missing = true
		}
	}
	if missing {
		os.Exit(1)
	}
}
