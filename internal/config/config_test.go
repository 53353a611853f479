package config

import (
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/go-playground/validator/v10"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
    for _, k := range []string{"PORT", "PREDICT_URL", "PREDICT_API_KEY", "PREDICT_TIMEOUT", "MAX_UPLOAD_BYTES", "LOG_FILE", "GIN_MODE"} {
        t.Setenv(k, "")
    }
}

func TestLoadDefaults(t *testing.T) {
    clearEnv(t)
    cfg, err := Load("")
    require.NoError(t, err)
    assert.Equal(t, Default(), cfg)
    assert.Equal(t, ":8080", cfg.Addr())
    assert.Zero(t, cfg.RequestTimeout())
}

func TestLoadFileThenEnv(t *testing.T) {
    clearEnv(t)
    path := filepath.Join(t.TempDir(), "frontend.yaml")
    require.NoError(t, os.WriteFile(path, []byte(
        "port: 9000\nendpoint: http://model:5000/predict\ntimeout: 30s\nmax_upload_bytes: 1024\n"), 0o644))

    t.Setenv("PREDICT_API_KEY", "secret")
    t.Setenv("PORT", "9100")

    cfg, err := Load(path)
    require.NoError(t, err)
    assert.Equal(t, 9100, cfg.Port)
    assert.Equal(t, "http://model:5000/predict", cfg.Endpoint)
    assert.Equal(t, "secret", cfg.APIKey)
    assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
    assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
}

func TestLoadRejectsInvalid(t *testing.T) {
    tests := map[string]map[string]string{
        "bad url":      {"PREDICT_URL": "not a url"},
        "bad port":     {"PORT": "70000"},
        "port not int": {"PORT": "http"},
        "bad timeout":  {"PREDICT_TIMEOUT": "soon"},
        "bad mode":     {"GIN_MODE": "verbose"},
        "zero upload":  {"MAX_UPLOAD_BYTES": "0"},
    }
    for name, env := range tests {
        t.Run(name, func(t *testing.T) {
            clearEnv(t)
            for k, v := range env { t.Setenv(k, v) }
            _, err := Load("")
            assert.Error(t, err)
        })
    }
}

func TestLoadMissingFile(t *testing.T) {
    clearEnv(t)
    _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
    assert.Error(t, err)
}

func TestDurationTagIsRegistered(t *testing.T) {
    var v *validator.Validate
    require.NotPanics(t, func() { v = newValidator() })

    type timed struct {
        D string `validate:"duration"`
    }
    assert.NoError(t, v.Struct(timed{D: "2s"}))
    assert.Error(t, v.Struct(timed{D: "soon"}))
    assert.Error(t, v.Struct(timed{D: "-1s"}))
}
