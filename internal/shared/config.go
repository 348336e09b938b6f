package shared

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// ServerConfig is loaded once at startup and not mutated afterwards.
type ServerConfig struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr" json:"addr"`

	// Store selects the backend: "sqlite" (default), "mongo" or "memory".
	Store string `yaml:"store" json:"store"`

	DBPath        string `yaml:"db_path" json:"db_path"`
	MongoURI      string `yaml:"mongo_uri" json:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database" json:"mongo_database"`

	// Version and SourceURL are reported by GET /info.
	Version   string `yaml:"version" json:"version"`
	SourceURL string `yaml:"source_url" json:"source_url"`

	ShutdownSeconds int `yaml:"shutdown_seconds" json:"shutdown_seconds"`
}

func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		Store:           StoreSQLite,
		DBPath:          "./data/agenda.db",
		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   "agenda",
		Version:         "0.0.0",
		SourceURL:       "https://github.com/salaboy/fmtok8s-agenda",
		ShutdownSeconds: 10,
	}
}

// Normalize fills zero values with defaults.
func (c *ServerConfig) Normalize() {
	d := DefaultServerConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.Store == "" {
		c.Store = d.Store
	}
	if c.DBPath == "" {
		c.DBPath = d.DBPath
	}
	if c.MongoURI == "" {
		c.MongoURI = d.MongoURI
	}
	if c.MongoDatabase == "" {
		c.MongoDatabase = d.MongoDatabase
	}
	if c.Version == "" {
		c.Version = d.Version
	}
	if c.SourceURL == "" {
		c.SourceURL = d.SourceURL
	}
	if c.ShutdownSeconds <= 0 {
		c.ShutdownSeconds = d.ShutdownSeconds
	}
}

// ShutdownTimeout is the grace period for in-flight requests on shutdown.
func (c *ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownSeconds) * time.Second
}

// LoadServerConfig reads the YAML file at path, applies AGENDA_* environment
// overrides and fills defaults. An empty path skips the file; a path that
// does not exist is an error.
func LoadServerConfig(path string) (*ServerConfig, error) {
	var c ServerConfig
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	}
	c.applyEnv()
	c.Normalize()
	return &c, nil
}

func (c *ServerConfig) applyEnv() {
	setFromEnv(&c.Addr, "AGENDA_ADDR")
	setFromEnv(&c.Store, "AGENDA_STORE")
	setFromEnv(&c.DBPath, "AGENDA_DB_PATH")
	setFromEnv(&c.MongoURI, "AGENDA_MONGO_URI")
	setFromEnv(&c.MongoDatabase, "AGENDA_MONGO_DATABASE")
	setFromEnv(&c.Version, "AGENDA_VERSION")
	setFromEnv(&c.SourceURL, "AGENDA_SOURCE_URL")
	if v := os.Getenv("AGENDA_SHUTDOWN_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ShutdownSeconds = n
		}
	}
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
