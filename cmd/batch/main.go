package main

import (
    "context"
    "encoding/csv"
    "flag"
    "fmt"
    "os"
    "path/filepath"
    "strconv"

    "go.uber.org/multierr"
    "go.uber.org/zap"
    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/plotutil"
    "gonum.org/v1/plot/vg"

    "exoplanet/internal/batch"
    "exoplanet/internal/config"
    "exoplanet/internal/data"
    "exoplanet/internal/predict"
    "exoplanet/internal/render"
    "exoplanet/pkg/utils"
)

var outcomeOrder = []string{string(data.Confirmed), string(data.Candidate), string(data.FalsePositive), "ERROR", "INVALID"}

type options struct {
    in       string
    endpoint string
    apiKey   string
    outCSV   string
    outImg   string
}

func main() {
    in := flag.String("in", "", "input CSV with the koi_* columns")
    configPath := flag.String("config", "", "YAML config file (env vars override it)")
    endpoint := flag.String("endpoint", "", "prediction endpoint URL, overrides the config")
    outCSV := flag.String("out_csv", "data/batch_results.csv", "output CSV, one result per row")
    outImg := flag.String("out_img", "data/batch_results.png", "output PNG with the label distribution")
    gen := flag.Int("gen", 0, "write a synthetic catalog with N rows to -in and exit")
    seed := flag.Int64("seed", 1, "seed for -gen")
    flag.Parse()

    cfg, err := config.Load(*configPath)
    if err != nil {
        utils.Logger("", false).Fatal("config", zap.Error(err))
    }
    logger := utils.Logger(cfg.LogFile, false)
    defer logger.Sync()

    if *in == "" { logger.Fatal("-in is required") }

    if *gen > 0 {
        if err := writeSample(*in, *gen, *seed); err != nil {
            logger.Fatal("sample generation failed", zap.Error(err))
        }
        logger.Info("sample written", zap.String("path", *in), zap.Int("rows", *gen))
        return
    }

    opts := options{in: *in, endpoint: cfg.Endpoint, apiKey: cfg.APIKey, outCSV: *outCSV, outImg: *outImg}
    if *endpoint != "" { opts.endpoint = *endpoint }

    if err := run(context.Background(), opts, cfg, logger); err != nil {
        logger.Fatal("batch failed", zap.Error(err))
    }
}

func writeSample(path string, rows int, seed int64) (err error) {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer func() { err = multierr.Append(err, f.Close()) }()
    return data.GenerateCatalog(f, data.CatalogOptions{Rows: rows, InvalidRate: 0.05, Seed: seed})
}

// logSink prints the plain outcome of each row as it settles.
type logSink struct {
    logger *zap.Logger
}

func (s logSink) Status(b render.Block) {
    s.logger.Info("status", zap.String("status", string(b.Status)), zap.String("html", string(b.HTML())))
}

func (s logSink) Reset() {}

func (s logSink) Row(i int) render.Target {
    return render.TargetFunc(func(b render.Block) {
        s.logger.Debug("row", zap.Int("row", i), zap.String("status", string(b.Status)))
    })
}

func run(ctx context.Context, opts options, cfg config.Config, logger *zap.Logger) error {
    raw, err := os.ReadFile(opts.in)
    if err != nil { return err }

    client := predict.NewClient(opts.endpoint,
        predict.WithAPIKey(opts.apiKey),
        predict.WithTimeout(cfg.RequestTimeout()),
        predict.WithLogger(logger.Named("predict")),
    )
    report, err := batch.NewProcessor(client, logger.Named("batch")).Run(ctx, string(raw), logSink{logger: logger})
    if err != nil { return err }

    counts := report.Counts()
    for _, k := range outcomeOrder {
        fmt.Printf("%-15s %d\n", k, counts[k])
    }

    err = multierr.Append(writeResults(opts.outCSV, report), plotCounts(opts.outImg, counts))
    if err == nil {
        logger.Info("results saved", zap.String("csv", opts.outCSV), zap.String("img", opts.outImg))
    }
    return err
}

func writeResults(path string, report *batch.Report) (err error) {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer func() { err = multierr.Append(err, f.Close()) }()

    w := csv.NewWriter(f)
    if err := w.Write([]string{"row", "label", "outcome", "error"}); err != nil { return err }
    for _, r := range report.Rows {
        outcome, msg := string(r.Label.Bucket()), ""
        switch {
        case r.Invalid:
            outcome, msg = "INVALID", r.Err.Error()
        case r.Err != nil:
            outcome, msg = "ERROR", r.Err.Error()
        }
        if err := w.Write([]string{strconv.Itoa(r.Row), string(r.Label), outcome, msg}); err != nil { return err }
    }
    w.Flush()
    return w.Error()
}

func plotCounts(path string, counts map[string]int) error {
    vals := make(plotter.Values, len(outcomeOrder))
    for i, k := range outcomeOrder { vals[i] = float64(counts[k]) }

    p := plot.New()
    p.Title.Text = "Batch classification"
    p.Y.Label.Text = "Rows"
    p.Y.Min = 0

    bars, err := plotter.NewBarChart(vals, vg.Points(40))
    if err != nil { return err }
    bars.LineStyle.Width = vg.Length(0)
    bars.Color = plotutil.Color(0)
    p.Add(bars)
    p.NominalX(outcomeOrder...)

    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    return p.Save(7*vg.Inch, 4*vg.Inch, path)
}
