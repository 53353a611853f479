package main

import (
    "bytes"
    "context"
    "encoding/csv"
    "io"
    "net/http"
    "net/http/httptest"
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap/zaptest"

    "exoplanet/internal/config"
)

func TestRunWritesResultsAndChart(t *testing.T) {
    ep := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        _, _ = io.WriteString(w, `{"prediction":"CONFIRMED"}`)
    }))
    defer ep.Close()

    dir := t.TempDir()
    in := filepath.Join(dir, "koi.csv")
    require.NoError(t, os.WriteFile(in, []byte("koi_period,koi_fpflag_nt,koi_fpflag_ss,koi_fpflag_co\n10,0,0,0\nbad,0,0,0\n"), 0o644))

    opts := options{
        in:       in,
        endpoint: ep.URL,
        outCSV:   filepath.Join(dir, "out", "results.csv"),
        outImg:   filepath.Join(dir, "out", "results.png"),
    }
    require.NoError(t, run(context.Background(), opts, config.Default(), zaptest.NewLogger(t)))

    f, err := os.Open(opts.outCSV)
    require.NoError(t, err)
    defer f.Close()
    rows, err := csv.NewReader(f).ReadAll()
    require.NoError(t, err)
    assert.Equal(t, [][]string{
        {"row", "label", "outcome", "error"},
        {"1", "CONFIRMED", "CONFIRMED", ""},
        {"2", "", "INVALID", "Row 2: Invalid numeric data"},
    }, rows)

    info, err := os.Stat(opts.outImg)
    require.NoError(t, err)
    assert.Positive(t, info.Size())
}

func TestRunStopsOnMissingColumn(t *testing.T) {
    dir := t.TempDir()
    in := filepath.Join(dir, "koi.csv")
    require.NoError(t, os.WriteFile(in, []byte("koi_period\n10\n"), 0o644))

    opts := options{in: in, endpoint: "http://127.0.0.1:1/predict", outCSV: filepath.Join(dir, "r.csv"), outImg: filepath.Join(dir, "r.png")}
    err := run(context.Background(), opts, config.Default(), zaptest.NewLogger(t))
    require.Error(t, err)
    assert.Contains(t, err.Error(), "koi_fpflag_nt")
    assert.NoFileExists(t, opts.outCSV)
}

func TestWriteSample(t *testing.T) {
    path := filepath.Join(t.TempDir(), "sample", "koi.csv")
    require.NoError(t, writeSample(path, 10, 3))
    raw, err := os.ReadFile(path)
    require.NoError(t, err)
    rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
    require.NoError(t, err)
    assert.Len(t, rows, 11)
}
