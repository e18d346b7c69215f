package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	DBPath    string
	ExportDir string
	LogLevel  string

	Settings Settings
}

// Settings is the read-only ledger configuration injected into the engine;
// the engine never writes it back.
type Settings struct {
	InitialRows    int
	RecentLimit    int
	DefaultVehicle string
	DefaultModel   string
	LoadPlaces     []string
	UnloadPlaces   []string
}

func Load() AppConfig {
	// Load .env file if it exists
	_ = godotenv.Load()

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k))); err == nil && n > 0 {
			return n
		}
		return def
	}
	getList := func(k string, def []string) []string {
		raw := os.Getenv(k)
		if strings.TrimSpace(raw) == "" {
			return def
		}
		var out []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) == 0 {
			return def
		}
		return out
	}

	return AppConfig{
		Port:      get("PORT", "8080"),
		DBPath:    get("DB_PATH", "ledger.db"),
		ExportDir: get("EXPORT_DIR", "exports"),
		LogLevel:  get("LOG_LEVEL", "info"),
		Settings: Settings{
			InitialRows:    getInt("INITIAL_ROWS", 31),
			RecentLimit:    getInt("RECENT_LIMIT", 12),
			DefaultVehicle: get("DEFAULT_VEHICLE", "蒙J87721"),
			DefaultModel:   get("DEFAULT_MODEL", "PAC"),
			LoadPlaces:     getList("LOAD_PLACES", []string{"装车地A", "装车地B", "装车地C"}),
			UnloadPlaces:   getList("UNLOAD_PLACES", []string{"卸货地A", "卸货地B", "卸货地C"}),
		},
	}
}
