package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yaml"
	defaultPort       = 2333
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBName     = "folio_space"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"
	defaultRedisURL   = "redis://localhost:6379/0"
)

// Load reads the YAML config file, applies environment overrides and
// normalizes aliased keys into the canonical AppConfig shape.
// A missing config file is not an error: defaults plus env vars apply.
func Load(path string) (*AppConfig, error) {
	raw := rawAppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := normalize(&raw)
	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// IsDev reports whether the server runs with development defaults.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development") || DevelopmentMode(c)
}

func normalize(raw *rawAppConfig) *AppConfig {
	cfg := &AppConfig{
		Port:     raw.Port,
		Env:      strings.TrimSpace(raw.Env),
		RedisURL: strings.TrimSpace(raw.RedisURL),
	}

	cfg.DSN = firstNonEmpty(raw.DSN, raw.DatabaseURL, raw.Database.DSN, raw.Database.URL)

	cfg.Database = DatabaseRuntimeConfig{
		Host:     firstNonEmpty(raw.Database.Host, raw.DBHost),
		Port:     firstNonZero(raw.Database.Port, raw.DBPort),
		User:     firstNonEmpty(raw.Database.User, raw.Database.Username, raw.DBUser),
		Password: firstNonEmpty(raw.Database.Password, raw.DBPassword),
		Name:     firstNonEmpty(raw.Database.Name, raw.Database.DBName, raw.DBName),
		Charset:  firstNonEmpty(raw.Database.Charset, raw.DBCharset),
		Loc:      firstNonEmpty(raw.Database.Loc, raw.DBLoc),
		Params:   raw.Database.Params,
	}
	cfg.databaseProvided = cfg.DSN != "" ||
		cfg.Database.Host != "" || cfg.Database.User != "" ||
		cfg.Database.Password != "" || cfg.Database.Name != ""

	cfg.Database.ParseTime = true
	if raw.Database.ParseTime != nil {
		cfg.Database.ParseTime = *raw.Database.ParseTime
	} else if raw.DBParseTime != nil {
		cfg.Database.ParseTime = *raw.DBParseTime
	}

	if cfg.RedisURL == "" && raw.RedisHost != "" {
		port := raw.RedisPort
		if port == 0 {
			port = 6379
		}
		db := 0
		if raw.RedisDB != nil {
			db = *raw.RedisDB
		}
		auth := ""
		if raw.RedisPassword != "" {
			auth = ":" + raw.RedisPassword + "@"
		}
		cfg.RedisURL = fmt.Sprintf("redis://%s%s/%d", auth, net.JoinHostPort(raw.RedisHost, strconv.Itoa(port)), db)
	}

	if len(raw.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = raw.AllowedOrigins
	} else {
		cfg.AllowedOrigins = raw.CORSAllowedOrigins
	}

	cfg.JWTSecret = firstNonEmpty(raw.JWTSecret, raw.JWTSecretLegacy)
	cfg.Timezone = firstNonEmpty(raw.Timezone, raw.TZ)

	storage := raw.Storage
	if storage == (rawStorageConfig{}) {
		storage = raw.S3
	}
	cfg.Storage = StorageConfig{
		Endpoint:        strings.TrimSpace(storage.Endpoint),
		AccessKeyID:     firstNonEmpty(storage.AccessKeyID, storage.AccessKey),
		SecretAccessKey: firstNonEmpty(storage.SecretAccessKey, storage.SecretKey),
		Bucket:          strings.TrimSpace(storage.Bucket),
		Region:          strings.TrimSpace(storage.Region),
		CustomDomain:    strings.TrimSpace(storage.CustomDomain),
	}
	if storage.PathStyleAccess != nil {
		cfg.Storage.PathStyleAccess = *storage.PathStyleAccess
	}

	return cfg
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("FOLIO_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	if v := os.Getenv("FOLIO_DSN"); v != "" {
		cfg.DSN = v
		cfg.databaseProvided = true
	}
	if v := os.Getenv("FOLIO_REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("FOLIO_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("FOLIO_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("FOLIO_STORAGE_ENDPOINT"); v != "" {
		cfg.Storage.Endpoint = v
	}
	if v := os.Getenv("FOLIO_STORAGE_ACCESS_KEY_ID"); v != "" {
		cfg.Storage.AccessKeyID = v
	}
	if v := os.Getenv("FOLIO_STORAGE_SECRET_ACCESS_KEY"); v != "" {
		cfg.Storage.SecretAccessKey = v
	}
	if v := os.Getenv("FOLIO_STORAGE_BUCKET"); v != "" {
		cfg.Storage.Bucket = v
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = defaultRedisURL
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = defaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = defaultDBPort
	}
	if cfg.Database.User == "" {
		cfg.Database.User = defaultDBUser
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = defaultDBName
	}
	if cfg.Database.Charset == "" {
		cfg.Database.Charset = defaultDBCharset
	}
	if cfg.Database.Loc == "" {
		cfg.Database.Loc = defaultDBLoc
	}
	if cfg.DSN == "" && cfg.databaseProvided {
		cfg.DSN = buildDSN(&cfg.Database)
	}
}

// buildDSN assembles a MySQL DSN from the discrete database fields.
func buildDSN(db *DatabaseRuntimeConfig) string {
	params := map[string]string{
		"charset":   db.Charset,
		"parseTime": strconv.FormatBool(db.ParseTime),
		"loc":       db.Loc,
	}
	for k, v := range db.Params {
		params[k] = v
	}

	var sb strings.Builder
	first := true
	for _, k := range []string{"charset", "parseTime", "loc"} {
		if v := params[k]; v != "" {
			if !first {
				sb.WriteString("&")
			}
			sb.WriteString(k + "=" + v)
			first = false
			delete(params, k)
		}
	}
	for k, v := range params {
		if !first {
			sb.WriteString("&")
		}
		sb.WriteString(k + "=" + v)
		first = false
	}

	return fmt.Sprintf("%s:%s@tcp(%s)/%s?%s",
		db.User, db.Password,
		net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		db.Name, sb.String())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
