// Package config contains utilities for loading configs
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/go-playground/validator/v10"
	"github.com/mign0n/foodgram-project/internal/password"
	"github.com/mign0n/foodgram-project/internal/shopping"
)

const (
	configFilePath     = "/data/foodgram.yaml"
	configPathEnv      = "FOODGRAM_CONFIG"
	appSecretBytes     = 32
	appSecretFilePerms = 0o600
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	defaultServerPort       = 8080
	defaultHostOrigin       = "http://localhost:8080"
	defaultAppSecretPath    = "/data/secret"
	defaultAppSecretVersion = "1"
	defaultDatabaseHost     = "localhost"
	defaultDatabasePort     = 5432
	defaultRateLimit        = 30
	defaultRateLimitWindow  = time.Minute
	defaultLogLevel         = "debug"
)

type AdminPassword string

func (a AdminPassword) Validate() error {
	return password.ValidatePassword(string(a))
}

type AppSecretValue string

func (a *AppSecretValue) Validate() error {
	if a == nil {
		return errors.New("secret should not be nil")
	}
	if len([]byte(*a)) < appSecretBytes {
		return errors.New("secret should be at least 32 bytes")
	}
	return nil
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing is a cross-field validator attached to a placeholder field.
// It passes only when every field named in the tag parameter is zero, or
// every one of them is set (e.g. `validate:"allOrNothing=A B C"`). Nil
// pointers and interfaces count as zero. Unknown field names fail the check.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
	return v
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() == "allOrNothing" {
			// e.g., "Config.Database.Validate" -> "Database"
			parts := strings.Split(e.Namespace(), ".")
			var structName string
			//nolint:mnd
			if len(parts) >= 2 {
				structName = parts[len(parts)-2]
			}

			var fields string
			switch structName {
			case "Database":
				fields = "Port, Host, Database, User, and Password"
			case "Admin":
				fields = "Username, FirstName, LastName, Email, and Password"
			default:
				fields = "all related fields"
			}

			return fmt.Errorf(
				"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
				structName, fields)
		}
	}

	return err
}

type AppSecret struct {
	Value   *AppSecretValue `yaml:"value" validate:"omitempty,validateFn"`
	Path    string          `yaml:"path" validate:"omitempty,filepath"`
	Version string          `yaml:"version"`
}

type Database struct {
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Port Host Database User Password"`
}

// ConnString builds the pgx connection URL.
func (d Database) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s", d.User, d.Password, d.Host, d.Port, d.Database)
}

type Server struct {
	Port        uint16   `yaml:"port" validate:"required"`
	CORSOrigins []string `yaml:"cors_origins" validate:"dive,url"`
	LogLevel    string   `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

type Shopping struct {
	Aggregation shopping.Strategy `yaml:"aggregation" validate:"validateFn"`
}

type RateLimit struct {
	Requests int           `yaml:"requests" validate:"gte=0"`
	Window   time.Duration `yaml:"window" validate:"gte=0"`
}

type Admin struct {
	Username  string        `yaml:"username" validate:"omitempty,alphanum"`
	FirstName string        `yaml:"first_name"`
	LastName  string        `yaml:"last_name"`
	Email     string        `yaml:"email" validate:"omitempty,email"`
	Password  AdminPassword `yaml:"password" validate:"omitempty,validateFn"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Username FirstName LastName Email Password"`
}

type Config struct {
	AppSecret  AppSecret `yaml:"app_secret"`
	Admin      Admin     `yaml:"admin"`
	Database   Database  `yaml:"database"`
	Server     Server    `yaml:"server"`
	Shopping   Shopping  `yaml:"shopping"`
	RateLimit  RateLimit `yaml:"rate_limit"`
	HostOrigin string    `yaml:"host_origin" validate:"url"`
	Env        string    `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
}

func newAppSecret() (string, error) {
	token := make([]byte, appSecretBytes)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("creating app secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(token), nil
}

func loadAppSecret(config *Config) error {
	if config.AppSecret.Value != nil {
		return nil
	}

	var secret string
	if f1, err := os.Lstat(config.AppSecret.Path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking secret path: %w", err)
		}

		file, err := os.OpenFile(config.AppSecret.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, appSecretFilePerms)
		if err != nil {
			return fmt.Errorf("creating secret file: %w", err)
		}
		defer func() { _ = file.Close() }()

		secret, err = newAppSecret()
		if err != nil {
			return fmt.Errorf("generating new app secret: %w", err)
		}

		if _, err := file.WriteString(secret); err != nil {
			return fmt.Errorf("writing secret file: %w", err)
		}
	} else {
		if f1.IsDir() {
			return fmt.Errorf("expected file, got directory at %q", config.AppSecret.Path)
		}
		data, err := os.ReadFile(config.AppSecret.Path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		secret = string(data)
	}
	val := AppSecretValue(secret)
	config.AppSecret.Value = &val
	return nil
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func loadConfigFromEnv() (Config, error) {
	conf := Config{
		HostOrigin: loadWithDefault("HOST_ORIGIN", defaultHostOrigin),
		Env:        loadWithDefault("ENV", EnvDev),
	}

	// AppSecret
	appSecretValue := AppSecretValue(loadWithDefault("APP_SECRET", ""))
	conf.AppSecret = AppSecret{
		Path:    loadWithDefault("APP_SECRET_PATH", defaultAppSecretPath),
		Version: loadWithDefault("APP_SECRET_VERSION", defaultAppSecretVersion),
	}
	if appSecretValue != "" {
		conf.AppSecret.Value = &appSecretValue
	}

	// Database
	conf.Database = Database{
		Host:     loadWithDefault("DATABASE_HOST", defaultDatabaseHost),
		Database: loadWithDefault("DATABASE", ""),
		User:     loadWithDefault("DATABASE_USER", ""),
		Password: loadWithDefault("DATABASE_PASSWORD", ""),
	}
	databasePort := loadWithDefault("DATABASE_PORT", strconv.Itoa(defaultDatabasePort))
	if port, err := strconv.ParseUint(databasePort, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid DATABASE_PORT (%q): %w", databasePort, err)
	} else {
		conf.Database.Port = uint16(port)
	}

	// Server
	conf.Server = Server{
		CORSOrigins: splitList(loadWithDefault("CORS_ORIGINS", "")),
		LogLevel:    loadWithDefault("LOG_LEVEL", defaultLogLevel),
	}
	serverPort := loadWithDefault("PORT", strconv.Itoa(defaultServerPort))
	if port, err := strconv.ParseUint(serverPort, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid PORT (%q): %w", serverPort, err)
	} else {
		conf.Server.Port = uint16(port)
	}

	// Shopping
	conf.Shopping = Shopping{
		Aggregation: shopping.Strategy(loadWithDefault("SHOPPING_AGGREGATION", string(shopping.StrategyQuery))),
	}

	// Rate limit
	rateLimit := loadWithDefault("RATE_LIMIT_REQUESTS", strconv.Itoa(defaultRateLimit))
	if n, err := strconv.Atoi(rateLimit); err != nil {
		return conf, fmt.Errorf("invalid RATE_LIMIT_REQUESTS (%q): %w", rateLimit, err)
	} else {
		conf.RateLimit.Requests = n
	}
	rateWindow := loadWithDefault("RATE_LIMIT_WINDOW", defaultRateLimitWindow.String())
	if d, err := time.ParseDuration(rateWindow); err != nil {
		return conf, fmt.Errorf("invalid RATE_LIMIT_WINDOW (%q): %w", rateWindow, err)
	} else {
		conf.RateLimit.Window = d
	}

	// Admin
	conf.Admin = Admin{
		Username:  loadWithDefault("ADMIN_USERNAME", ""),
		FirstName: loadWithDefault("ADMIN_FIRST_NAME", ""),
		LastName:  loadWithDefault("ADMIN_LAST_NAME", ""),
		Email:     loadWithDefault("ADMIN_EMAIL", ""),
		Password:  AdminPassword(loadWithDefault("ADMIN_PASSWORD", "")),
	}

	if err := newValidator().Struct(conf); err != nil {
		return conf, formatValidationError(err)
	}

	if err := loadAppSecret(&conf); err != nil {
		return conf, fmt.Errorf("loading app secret: %w", err)
	}

	return conf, nil
}

func applyDefaults(config *Config) {
	if config.AppSecret.Path == "" {
		config.AppSecret.Path = defaultAppSecretPath
	}
	if config.AppSecret.Version == "" {
		config.AppSecret.Version = defaultAppSecretVersion
	}
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.HostOrigin == "" {
		config.HostOrigin = defaultHostOrigin
	}
	if config.Database.Host == "" {
		config.Database.Host = defaultDatabaseHost
	}
	if config.Database.Port == 0 {
		config.Database.Port = defaultDatabasePort
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaultServerPort
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaultLogLevel
	}
	if config.Shopping.Aggregation == "" {
		config.Shopping.Aggregation = shopping.StrategyQuery
	}
	if config.RateLimit.Requests == 0 {
		config.RateLimit.Requests = defaultRateLimit
	}
	if config.RateLimit.Window == 0 {
		config.RateLimit.Window = defaultRateLimitWindow
	}
}

func loadConfigFromFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	applyDefaults(&config)

	if err := newValidator().Struct(config); err != nil {
		return Config{}, formatValidationError(err)
	}

	if err := loadAppSecret(&config); err != nil {
		return Config{}, fmt.Errorf("loading app secret: %w", err)
	}

	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// LoadConfig reads the YAML config file when present and falls back to
// environment variables otherwise.
func LoadConfig() (Config, error) {
	path := loadWithDefault(configPathEnv, configFilePath)
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
