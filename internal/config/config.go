// Package config loads service configuration from the environment, with an
// optional YAML file supplying defaults. Environment variables always win.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=banking_ledger_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultHTTPAddr = ":8080"
const defaultMigrationsDir = "migrations"

type Config struct {
	DatabaseDSN   string
	HTTPAddr      string
	MigrationsDir string
}

type fileConfig struct {
	DatabaseDSN   string `yaml:"database_dsn"`
	HTTPAddr      string `yaml:"http_addr"`
	MigrationsDir string `yaml:"migrations_dir"`
}

// Load resolves configuration in order: built-in defaults, then the YAML file
// named by CONFIG_FILE (if set), then individual environment variables.
func Load() (Config, error) {
	cfg := Config{
		DatabaseDSN:   defaultConnectionString,
		HTTPAddr:      defaultHTTPAddr,
		MigrationsDir: defaultMigrationsDir,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", path, err)
		}

		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
		}

		if strings.TrimSpace(fc.DatabaseDSN) != "" {
			cfg.DatabaseDSN = strings.TrimSpace(fc.DatabaseDSN)
		}
		if strings.TrimSpace(fc.HTTPAddr) != "" {
			cfg.HTTPAddr = strings.TrimSpace(fc.HTTPAddr)
		}
		if strings.TrimSpace(fc.MigrationsDir) != "" {
			cfg.MigrationsDir = strings.TrimSpace(fc.MigrationsDir)
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("DATABASE_DSN")); dsn != "" {
		cfg.DatabaseDSN = dsn
	}
	if addr := strings.TrimSpace(os.Getenv("HTTP_ADDR")); addr != "" {
		cfg.HTTPAddr = addr
	}
	if dir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")); dir != "" {
		cfg.MigrationsDir = dir
	}

	cfg.DatabaseDSN = normalizeConnectionString(cfg.DatabaseDSN)

	return cfg, nil
}

// normalizeConnectionString accepts both libpq keyword DSNs and
// semicolon-separated "Host=...;Port=..." connection strings, returning the
// libpq keyword form either way.
func normalizeConnectionString(raw string) string {
	if !strings.Contains(raw, ";") {
		return raw
	}

	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
