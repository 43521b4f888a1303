package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string
	Env         string
	CORSOrigins []string
	Mongo       MongoDBConfig
}

// MongoDBConfig describes how to reach the portal database.
type MongoDBConfig struct {
	URI      string // full connection string, wins over the fields below
	Username string
	Password string
	Cluster  string
	AppName  string
	Database string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// NewConfig reads the process environment. Call bootstrap.Loadenv first if a
// .env file should be honoured.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:        get("PORT", "5000"),
		Env:         get("APP_ENV", "development"),
		CORSOrigins: splitList(get("CORS_ORIGINS", "*")),
		Mongo: MongoDBConfig{
			URI:      os.Getenv("MONGO_URI"),
			Username: os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Cluster:  get("DB_CLUSTER", "cluster0.bcz1ya4.mongodb.net"),
			AppName:  get("DB_APP_NAME", "Cluster0"),
			Database: get("DB_NAME", "jnuCsePortal"),
		},
	}
	if _, err := cfg.Mongo.ConnectionURI(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// IsProduction reports whether APP_ENV asks for production logging.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// ConnectionURI returns MONGO_URI when set, otherwise assembles an Atlas SRV
// URI from the credential variables.
func (m MongoDBConfig) ConnectionURI() (string, error) {
	if m.URI != "" {
		return m.URI, nil
	}
	if m.Username == "" || m.Password == "" {
		return "", errors.New("DB_USERNAME and DB_PASSWORD must be set when MONGO_URI is empty")
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(m.Username, m.Password),
		Host:     m.Cluster,
		Path:     "/",
		RawQuery: url.Values{"appName": {m.AppName}}.Encode(),
	}
	return u.String(), nil
}

// Redacted is ConnectionURI with the password masked, for logs.
func (m MongoDBConfig) Redacted() string {
	uri, err := m.ConnectionURI()
	if err != nil {
		return ""
	}
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Sprintf("<unparseable uri: %v>", err)
	}
	return u.Redacted()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
