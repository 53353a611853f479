package config

import (
    "fmt"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/go-playground/validator/v10"
    "github.com/goccy/go-yaml"
)

type Config struct {
    Port           int    `yaml:"port" validate:"gte=1,lte=65535"`
    Endpoint       string `yaml:"endpoint" validate:"required,url"`
    APIKey         string `yaml:"api_key"`
    Timeout        string `yaml:"timeout" validate:"omitempty,duration"`
    MaxUploadBytes int64  `yaml:"max_upload_bytes" validate:"gt=0"`
    LogFile        string `yaml:"log_file"`
    Mode           string `yaml:"mode" validate:"omitempty,oneof=debug release test"`
}

func Default() Config {
    return Config{
        Port:           8080,
        Endpoint:       "http://localhost:5000/predict",
        MaxUploadBytes: 10 << 20,
        Mode:           "release",
    }
}

// RequestTimeout is the per-request timeout for prediction calls; zero means none.
func (c Config) RequestTimeout() time.Duration {
    d, _ := time.ParseDuration(c.Timeout)
    return d
}

func (c Config) Addr() string { return ":" + strconv.Itoa(c.Port) }

var validate = newValidator()

func newValidator() *validator.Validate {
    v := validator.New(validator.WithRequiredStructEnabled())
    if err := v.RegisterValidation("duration", validDuration); err != nil {
        panic(fmt.Sprintf("config: register duration validation: %v", err))
    }
    return v
}

func validDuration(fl validator.FieldLevel) bool {
    d, err := time.ParseDuration(fl.Field().String())
    return err == nil && d >= 0
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then environment variables.
func Load(path string) (Config, error) {
    cfg := Default()
    if path != "" {
        raw, err := os.ReadFile(path)
        if err != nil {
            return Config{}, fmt.Errorf("read config: %w", err)
        }
        if err := yaml.Unmarshal(raw, &cfg); err != nil {
            return Config{}, fmt.Errorf("parse config %s: %w", path, err)
        }
    }
    if err := applyEnv(&cfg, os.LookupEnv); err != nil {
        return Config{}, err
    }
    if err := cfg.Validate(); err != nil {
        return Config{}, err
    }
    return cfg, nil
}

func (c Config) Validate() error {
    if err := validate.Struct(c); err != nil {
        return fmt.Errorf("invalid config: %w", err)
    }
    return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
    str := func(key string, dst *string) {
        if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
            *dst = strings.TrimSpace(v)
        }
    }
    str("PREDICT_URL", &cfg.Endpoint)
    str("PREDICT_API_KEY", &cfg.APIKey)
    str("PREDICT_TIMEOUT", &cfg.Timeout)
    str("LOG_FILE", &cfg.LogFile)
    str("GIN_MODE", &cfg.Mode)

    if v, ok := lookup("PORT"); ok && v != "" {
        p, err := strconv.Atoi(v)
        if err != nil { return fmt.Errorf("PORT: %w", err) }
        cfg.Port = p
    }
    if v, ok := lookup("MAX_UPLOAD_BYTES"); ok && v != "" {
        n, err := strconv.ParseInt(v, 10, 64)
        if err != nil { return fmt.Errorf("MAX_UPLOAD_BYTES: %w", err) }
        cfg.MaxUploadBytes = n
    }
    return nil
}
