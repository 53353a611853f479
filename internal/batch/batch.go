package batch

//go:generate mockgen -destination=mock_predictor.go -package=batch . Predictor

import (
    "context"
    "encoding/csv"
    "errors"
    "strings"

    "go.uber.org/zap"

    "exoplanet/internal/data"
    "exoplanet/internal/features"
    "exoplanet/internal/render"
)

var ErrEmptyFile = errors.New("csv file is empty")

// Predictor classifies one vector and shows progress and outcome in target.
type Predictor interface {
    Display(ctx context.Context, v features.Vector, target render.Target) (data.Label, error)
}

// Sink is the results container of one upload.
type Sink interface {
    // Status replaces the container's content with a single notice.
    Status(render.Block)
    // Reset empties the container before the first row slot is added.
    Reset()
    // Row appends a fresh slot for data row index (1-based) and returns it.
    Row(index int) render.Target
}

type RowResult struct {
    Row     int
    Label   data.Label
    Err     error
    Invalid bool
}

type Report struct {
    Rows []RowResult
}

// Counts tallies rows by rendered outcome. Invalid rows count under
// "INVALID" and failed calls under "ERROR".
func (r *Report) Counts() map[string]int {
    out := map[string]int{}
    for _, row := range r.Rows {
        switch {
        case row.Invalid:
            out["INVALID"]++
        case row.Err != nil:
            out["ERROR"]++
        default:
            out[string(row.Label.Bucket())]++
        }
    }
    return out
}

type Processor struct {
    predictor Predictor
    logger    *zap.Logger
}

func NewProcessor(p Predictor, logger *zap.Logger) *Processor {
    if logger == nil { logger = zap.NewNop() }
    return &Processor{predictor: p, logger: logger}
}

// Run parses content and classifies its data rows one at a time, each row
// awaited before the next starts. Structural failures (empty file, missing
// column) stop the run before any row and are returned. Every data line is
// tokenised on its own, so a line that cannot be read fails only its row.
// Per-row failures are rendered in the row's slot and recorded in the Report.
func (p *Processor) Run(ctx context.Context, content string, sink Sink) (*Report, error) {
    sink.Status(render.Parsing())

    lines := dataLines(content)
    if len(lines) < 2 {
        sink.Status(render.EmptyFile())
        return nil, ErrEmptyFile
    }

    idx, err := features.IndexColumns(splitLine(lines[0]))
    if err != nil {
        var missing *features.MissingColumnError
        if errors.As(err, &missing) {
            sink.Status(render.MissingColumn(missing.Column))
        }
        p.logger.Info("csv rejected", zap.Error(err))
        return nil, err
    }

    sink.Reset()
    report := &Report{Rows: make([]RowResult, 0, len(lines)-1)}
    for i := 1; i < len(lines); i++ {
        slot := sink.Row(i)
        slot.Render(render.RowPending(i))

        res := RowResult{Row: i}
        v, err := features.FromRow(i, trim(splitLine(lines[i])), idx)
        if err != nil {
            res.Invalid, res.Err = true, err
            slot.Render(render.Warning(err.Error()))
            report.Rows = append(report.Rows, res)
            continue
        }

        res.Label, res.Err = p.predictor.Display(ctx, v, slot)
        if res.Err != nil {
            p.logger.Warn("row prediction failed", zap.Int("row", i), zap.Error(res.Err))
        }
        report.Rows = append(report.Rows, res)
    }

    p.logger.Info("csv batch finished", zap.Int("rows", len(report.Rows)), zap.Any("counts", report.Counts()))
    return report, nil
}

// dataLines splits content into lines, dropping the ones that are blank or
// whitespace only.
func dataLines(content string) []string {
    content = strings.TrimPrefix(content, "\uFEFF")
    var out []string
    for _, line := range strings.Split(content, "\n") {
        line = strings.TrimSuffix(line, "\r")
        if strings.TrimSpace(line) == "" { continue }
        out = append(out, line)
    }
    return out
}

// splitLine tokenises one line on commas. Stray quotes stay in the cell
// text; a line that still fails to read yields no cells.
func splitLine(line string) []string {
    r := csv.NewReader(strings.NewReader(line))
    r.FieldsPerRecord = -1
    r.LazyQuotes = true
    rec, err := r.Read()
    if err != nil { return nil }
    return rec
}

func trim(rec []string) []string {
    out := make([]string, len(rec))
    for i, v := range rec { out[i] = strings.TrimSpace(v) }
    return out
}
