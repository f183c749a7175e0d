package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Typesense  TypesenseConfig
	Wikidata   WikidataConfig
	VIAF       VIAFConfig
	Enrichment EnrichmentConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// TypesenseConfig holds Typesense configuration
type TypesenseConfig struct {
	URL    string
	APIKey string
}

// WikidataConfig holds the Wikidata SPARQL endpoint configuration
type WikidataConfig struct {
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
}

// VIAFConfig holds the VIAF fallback source configuration
type VIAFConfig struct {
	Enabled  bool
	Endpoint string
	Timeout  time.Duration
}

// EnrichmentConfig holds enrichment pipeline configuration
type EnrichmentConfig struct {
	// Provider selects the lookup source: "wikidata" or "mock"
	Provider string

	// RequestInterval is the minimum spacing between external queries,
	// per the endpoints' fair-use policies
	RequestInterval time.Duration

	// CacheTTL bounds how long external lookup results are reused
	CacheTTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "museum_collection"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Typesense: TypesenseConfig{
			URL:    getEnv("TYPESENSE_URL", "http://localhost:8108"),
			APIKey: getEnv("TYPESENSE_API_KEY", "xyz"),
		},
		Wikidata: WikidataConfig{
			Endpoint:  getEnv("WIKIDATA_ENDPOINT", "https://query.wikidata.org/sparql"),
			UserAgent: getEnv("WIKIDATA_USER_AGENT", "MuseumDataEnrichment/1.0 (collection-enrichment)"),
			Timeout:   getEnvAsDuration("WIKIDATA_TIMEOUT", 15*time.Second),
		},
		VIAF: VIAFConfig{
			Enabled:  getEnvAsBool("VIAF_ENABLED", false),
			Endpoint: getEnv("VIAF_ENDPOINT", "https://viaf.org/viaf/AutoSuggest"),
			Timeout:  getEnvAsDuration("VIAF_TIMEOUT", 10*time.Second),
		},
		Enrichment: EnrichmentConfig{
			Provider:        getEnv("ENRICHMENT_PROVIDER", "wikidata"),
			RequestInterval: getEnvAsDuration("ENRICHMENT_REQUEST_INTERVAL", time.Second),
			CacheTTL:        getEnvAsDuration("ENRICHMENT_CACHE_TTL", 30*24*time.Hour),
		},
	}

	if cfg.Enrichment.RequestInterval < 0 {
		return nil, fmt.Errorf("ENRICHMENT_REQUEST_INTERVAL must not be negative")
	}

	return cfg, nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
