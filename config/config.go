package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/club-records/db"
	"github.com/Dosada05/club-records/storage"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDriver     string
	DatabaseURL        string
	ServerPort         int
	LogLevel           slog.Level
	ClubLocation       *time.Location
	CORSAllowedOrigins []string
	R2                 storage.R2Config
}

// Load reads configuration from the environment. A .env file, when present,
// is loaded first; variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any variable source.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	driver := get("DATABASE_DRIVER")
	if driver == "" {
		driver = db.DriverPostgres
	}
	if driver != db.DriverPostgres && driver != db.DriverSQLite {
		return nil, fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", db.DriverPostgres, db.DriverSQLite, driver)
	}

	dbURL := get("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	portStr := get("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	var level slog.Level
	if lvl := get("LOG_LEVEL"); lvl != "" {
		if err := level.UnmarshalText([]byte(lvl)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
		}
	}

	zone := get("CLUB_TIMEZONE")
	if zone == "" {
		zone = "UTC"
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid CLUB_TIMEZONE environment variable: %w", err)
	}

	origins := []string{"*"}
	if raw := get("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		DatabaseDriver:     driver,
		DatabaseURL:        dbURL,
		ServerPort:         port,
		LogLevel:           level,
		ClubLocation:       loc,
		CORSAllowedOrigins: origins,
		R2: storage.R2Config{
			AccountID:       get("R2_ACCOUNT_ID"),
			AccessKeyID:     get("R2_ACCESS_KEY_ID"),
			SecretAccessKey: get("R2_SECRET_ACCESS_KEY"),
			BucketName:      get("R2_BUCKET_NAME"),
			PublicBaseURL:   get("R2_PUBLIC_BASE_URL"),
		},
	}, nil
}
