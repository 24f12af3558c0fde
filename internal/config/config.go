// Package config loads application settings from the environment,
// with an optional .env file.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the paths and toggles the dashboard runs with.
type Config struct {
	DBPath    string // SQLite database with readings and users
	CSVPath   string // fallback readings file
	ExportDir string // where filtered exports are written
	DemoLogin bool   // seed and allow the demo account
}

// Load reads the .env file if present, then the environment, applying
// defaults for anything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[cfg] error loading .env: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}

	return Config{
		DBPath:    get("AQUAMIND_DB", "aquamind.db"),
		CSVPath:   get("AQUAMIND_CSV", "data/strawberry_dataset_3years.csv"),
		ExportDir: get("AQUAMIND_EXPORT_DIR", "exports"),
		DemoLogin: get("AQUAMIND_DEMO_LOGIN", "true") == "true",
	}
}
