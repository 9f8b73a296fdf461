package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
	DBPath   string

	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	WeatherTimeout     time.Duration
	FallbackCity       string

	SeasonTablesFile string
	IrrigationXLSX   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MarketSourceURL   string
	MarketRefreshCron string

	RateLimitRPS   float64
	RateLimitBurst int
	EnableDevLogin bool
	CORSOrigins    []string
	StaticDir      string
}

// Load reads .env when present, then the environment. Only malformed values
// are errors; anything unset takes its default.
func Load() (AppConfig, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (AppConfig, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	var errs []string
	dur := func(k string, def time.Duration) time.Duration {
		d, err := time.ParseDuration(get(k, def.String()))
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Sprintf("%s: want a positive duration, got %q", k, getenv(k)))
			return def
		}
		return d
	}
	integer := func(k string, def int) int {
		n, err := strconv.Atoi(get(k, strconv.Itoa(def)))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: want an integer, got %q", k, getenv(k)))
			return def
		}
		return n
	}
	float := func(k string, def float64) float64 {
		f, err := strconv.ParseFloat(get(k, strconv.FormatFloat(def, 'f', -1, 64)), 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: want a number, got %q", k, getenv(k)))
			return def
		}
		return f
	}
	boolean := func(k string, def bool) bool {
		b, err := strconv.ParseBool(get(k, strconv.FormatBool(def)))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: want true or false, got %q", k, getenv(k)))
			return def
		}
		return b
	}

	cfg := AppConfig{
		Port:     get("PORT", "3001"),
		Env:      get("APP_ENV", "development"),
		LogLevel: get("LOG_LEVEL", "info"),
		DBPath:   get("DB_PATH", "agrisense.db"),

		OpenWeatherAPIKey:  get("OPENWEATHER_API_KEY", ""),
		OpenWeatherBaseURL: strings.TrimRight(get("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"), "/"),
		WeatherTimeout:     dur("WEATHER_TIMEOUT", 5*time.Second),
		FallbackCity:       get("FALLBACK_CITY", "Nashik,IN"),

		SeasonTablesFile: get("SEASON_TABLES_FILE", ""),
		IrrigationXLSX:   get("IRRIGATION_XLSX", ""),

		RedisAddr:     get("REDIS_ADDR", ""),
		RedisPassword: get("REDIS_PASSWORD", ""),
		RedisDB:       integer("REDIS_DB", 0),

		MarketSourceURL:   get("MARKET_SOURCE_URL", ""),
		MarketRefreshCron: get("MARKET_REFRESH_CRON", "@every 30m"),

		RateLimitRPS:   float("RATE_LIMIT_RPS", 20),
		RateLimitBurst: integer("RATE_LIMIT_BURST", 40),
		EnableDevLogin: boolean("ENABLE_DEV_LOGIN", false),
		CORSOrigins:    splitList(get("CORS_ORIGINS", "*")),
		StaticDir:      get("STATIC_DIR", "static"),
	}
	if len(errs) > 0 {
		return cfg, fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c AppConfig) Production() bool { return c.Env == "production" }

// String omits secrets so the config can be logged at startup.
func (c AppConfig) String() string {
	return fmt.Sprintf("port=%s env=%s db=%s weather_key_set=%t redis=%q market_source=%q market_cron=%q rate=%.1f/%d dev_login=%t",
		c.Port, c.Env, c.DBPath, c.OpenWeatherAPIKey != "", c.RedisAddr, c.MarketSourceURL, c.MarketRefreshCron,
		c.RateLimitRPS, c.RateLimitBurst, c.EnableDevLogin)
}
