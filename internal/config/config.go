// Package config contains utilities for loading configs
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/go-playground/validator/v10"
	"github.com/matt-dz/recipefinder/internal/log"
)

const (
	configFilePath     = "/data/recipefinder.yaml"
	appSecretBytes     = 32
	appSecretFilePerms = 0o600
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

type GatewayMode string

const (
	GatewayModeMock   GatewayMode = "mock"
	GatewayModeRemote GatewayMode = "remote"
)

func (g GatewayMode) Validate() error {
	switch g {
	case GatewayModeMock, GatewayModeRemote:
		return nil
	}
	return fmt.Errorf("unknown gateway mode: %q", g)
}

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
	BackendS3       Backend = "s3"
)

func (b Backend) Validate() error {
	switch b {
	case BackendMemory, BackendFile, BackendPostgres, BackendRedis, BackendS3:
		return nil
	}
	return fmt.Errorf("unknown preferences backend: %q", b)
}

type LogLevel string

func (l LogLevel) Validate() error {
	_, err := log.ParseLevel(string(l))
	return err
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

// allOrNothing implements a cross-field validator for go-playground/validator.
//
// The validator succeeds only if all listed fields are zero or all listed
// fields are non-zero. It must be attached to a placeholder field and
// inspects the parent struct. Field names are given as a comma- or
// space-separated list (e.g. `validate:"allOrNothing=A,B,C"`).
//
// Nil pointers and interfaces count as zero; non-nil ones are dereferenced
// before reflect.Value.IsZero is applied. A non-struct parent, an unknown
// field name or an empty list fails validation to surface misconfiguration.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true // nothing to validate
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
			return false // field name typo / not found
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
			case "ObjectStore":
				fields = "Endpoint, AccessKey, SecretKey, and Bucket"
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

type Gateway struct {
	Mode              GatewayMode `yaml:"mode" validate:"validateFn"`
	BaseURL           string      `yaml:"base_url" validate:"omitempty,url"`
	APIKey            string      `yaml:"api_key"`
	PageSize          int         `yaml:"page_size" validate:"min=1,max=100"`
	RequestsPerSecond float64     `yaml:"requests_per_second" validate:"gte=0"`
	SimulateLatency   bool        `yaml:"simulate_latency"`
}

type Preferences struct {
	Backend   Backend `yaml:"backend" validate:"validateFn"`
	Directory string  `yaml:"directory"`
}

type Database struct {
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Port Host Database User Password"`
}

// URL returns the pgx connection string for the database.
func (d Database) URL() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(int(d.Port))),
		Path:   "/" + d.Database,
	}
	return u.String()
}

func (d Database) IsZero() bool {
	return d.User == "" && d.Password == "" && d.Database == ""
}

type Redis struct {
	Addr     string `yaml:"addr" validate:"omitempty,hostname_port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"gte=0"`
}

type ObjectStore struct {
	Endpoint  string `yaml:"endpoint" validate:"omitempty,hostname_port|hostname_rfc1123"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	UseSSL    bool   `yaml:"use_ssl"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Endpoint AccessKey SecretKey Bucket"`
}

type Config struct {
	AppSecret   AppSecret   `yaml:"app_secret"`
	Gateway     Gateway     `yaml:"gateway"`
	Preferences Preferences `yaml:"preferences"`
	Database    Database    `yaml:"database"`
	Redis       Redis       `yaml:"redis"`
	ObjectStore ObjectStore `yaml:"object_store"`
	HostOrigin  string      `yaml:"host_origin" validate:"url"`
	Env         string      `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
	Port        uint16      `yaml:"port"`
	LogLevel    LogLevel    `yaml:"log_level" validate:"validateFn"`
}

// checkBackend makes sure the selected preferences backend has what it needs.
func checkBackend(c Config) error {
	switch c.Preferences.Backend {
	case BackendFile:
		if c.Preferences.Directory == "" {
			return errors.New("file preferences backend requires a directory")
		}
	case BackendPostgres:
		if c.Database.IsZero() {
			return errors.New("postgres preferences backend requires database configuration")
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis preferences backend requires redis.addr")
		}
	case BackendS3:
		if c.ObjectStore.Endpoint == "" {
			return errors.New("s3 preferences backend requires object store configuration")
		}
	}
	if c.Gateway.Mode == GatewayModeRemote && c.Gateway.APIKey == "" {
		return errors.New("remote gateway requires an api key")
	}
	return nil
}

func validate(c *Config) error {
	if err := newValidator().Struct(c); err != nil {
		return formatValidationError(err)
	}
	return checkBackend(*c)
}

func newAppSecret() (string, error) {
	token := make([]byte, appSecretBytes)
	if _, err := rand.Reader.Read(token); err != nil {
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

func parseUint16(key, def string) (uint16, error) {
	raw := loadWithDefault(key, def)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s (%q): %w", key, raw, err)
	}
	return uint16(v), nil
}

func loadConfigFromEnv() (Config, error) {
	conf := Config{
		HostOrigin: loadWithDefault("HOST_ORIGIN", "http://localhost:8080"),
		Env:        loadWithDefault("ENV", EnvDev),
		LogLevel:   LogLevel(loadWithDefault("LOG_LEVEL", "INFO")),
	}

	// AppSecret
	appSecretValue := AppSecretValue(loadWithDefault("APP_SECRET", ""))
	conf.AppSecret = AppSecret{
		Path:    loadWithDefault("APP_SECRET_PATH", "/data/secret"),
		Version: loadWithDefault("APP_SECRET_VERSION", "1"),
	}
	if appSecretValue != "" {
		conf.AppSecret.Value = &appSecretValue
	}

	port, err := parseUint16("PORT", "8080")
	if err != nil {
		return conf, err
	}
	conf.Port = port

	// Gateway
	conf.Gateway = Gateway{
		Mode:    GatewayMode(loadWithDefault("GATEWAY_MODE", string(GatewayModeMock))),
		BaseURL: loadWithDefault("RECIPE_API_URL", "https://api.spoonacular.com"),
		APIKey:  loadWithDefault("RECIPE_API_KEY", ""),
	}
	pageSize := loadWithDefault("RECIPE_API_PAGE_SIZE", "20")
	if conf.Gateway.PageSize, err = strconv.Atoi(pageSize); err != nil {
		return conf, fmt.Errorf("invalid RECIPE_API_PAGE_SIZE (%q): %w", pageSize, err)
	}
	rps := loadWithDefault("RECIPE_API_RPS", "0")
	if conf.Gateway.RequestsPerSecond, err = strconv.ParseFloat(rps, 64); err != nil {
		return conf, fmt.Errorf("invalid RECIPE_API_RPS (%q): %w", rps, err)
	}
	latency := loadWithDefault("GATEWAY_SIMULATE_LATENCY", "true")
	if conf.Gateway.SimulateLatency, err = strconv.ParseBool(latency); err != nil {
		return conf, fmt.Errorf("invalid GATEWAY_SIMULATE_LATENCY (%q): %w", latency, err)
	}

	// Preferences
	conf.Preferences = Preferences{
		Backend:   Backend(loadWithDefault("PREFERENCES_BACKEND", string(BackendFile))),
		Directory: loadWithDefault("PREFERENCES_DIRECTORY", "/data/preferences"),
	}

	// Database
	conf.Database = Database{
		Host:     loadWithDefault("DATABASE_HOST", ""),
		Database: loadWithDefault("DATABASE", ""),
		User:     loadWithDefault("DATABASE_USER", ""),
		Password: loadWithDefault("DATABASE_PASSWORD", ""),
	}
	if !conf.Database.IsZero() {
		if conf.Database.Host == "" {
			conf.Database.Host = "localhost"
		}
		if conf.Database.Port, err = parseUint16("DATABASE_PORT", "5432"); err != nil {
			return conf, err
		}
	}

	// Redis
	conf.Redis = Redis{
		Addr:     loadWithDefault("REDIS_ADDR", ""),
		Password: loadWithDefault("REDIS_PASSWORD", ""),
	}
	redisDB := loadWithDefault("REDIS_DB", "0")
	if conf.Redis.DB, err = strconv.Atoi(redisDB); err != nil {
		return conf, fmt.Errorf("invalid REDIS_DB (%q): %w", redisDB, err)
	}

	// Object store
	conf.ObjectStore = ObjectStore{
		Endpoint:  loadWithDefault("S3_ENDPOINT", ""),
		AccessKey: loadWithDefault("S3_ACCESS_KEY", ""),
		SecretKey: loadWithDefault("S3_SECRET_KEY", ""),
		Bucket:    loadWithDefault("S3_BUCKET", ""),
		Region:    loadWithDefault("S3_REGION", "us-east-1"),
	}
	useSSL := loadWithDefault("S3_USE_SSL", "true")
	if conf.ObjectStore.UseSSL, err = strconv.ParseBool(useSSL); err != nil {
		return conf, fmt.Errorf("invalid S3_USE_SSL (%q): %w", useSSL, err)
	}

	if err := validate(&conf); err != nil {
		return conf, err
	}

	if err := loadAppSecret(&conf); err != nil {
		return conf, fmt.Errorf("loading app secret: %w", err)
	}

	return conf, nil
}

func loadConfigFromFile(path string) (Config, error) {
	// Read file
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	// Unmarshal into config
	config := Config{
		Gateway: Gateway{SimulateLatency: true},
		ObjectStore: ObjectStore{
			UseSSL: true,
		},
	}
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Set defaults
	if config.AppSecret.Path == "" {
		config.AppSecret.Path = "/data/secret"
	}
	if config.AppSecret.Version == "" {
		config.AppSecret.Version = "1"
	}
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.HostOrigin == "" {
		config.HostOrigin = "http://localhost:8080"
	}
	if config.Port == 0 {
		config.Port = 8080
	}
	if config.LogLevel == "" {
		config.LogLevel = "INFO"
	}
	if config.Gateway.Mode == "" {
		config.Gateway.Mode = GatewayModeMock
	}
	if config.Gateway.BaseURL == "" {
		config.Gateway.BaseURL = "https://api.spoonacular.com"
	}
	if config.Gateway.PageSize == 0 {
		config.Gateway.PageSize = 20
	}
	if config.Preferences.Backend == "" {
		config.Preferences.Backend = BackendFile
	}
	if config.Preferences.Directory == "" {
		config.Preferences.Directory = "/data/preferences"
	}
	if !config.Database.IsZero() {
		if config.Database.Host == "" {
			config.Database.Host = "localhost"
		}
		if config.Database.Port == 0 {
			config.Database.Port = 5432
		}
	}
	if config.ObjectStore.Region == "" {
		config.ObjectStore.Region = "us-east-1"
	}

	if err := validate(&config); err != nil {
		return Config{}, err
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

// LoadConfig reads path if it names a file, otherwise the environment. An
// empty path means the default location.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = configFilePath
	}
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
