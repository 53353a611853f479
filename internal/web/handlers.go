package web

import (
    "context"
    "errors"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"

    "github.com/gabriel-vasile/mimetype"
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "exoplanet/internal/data"
    "exoplanet/internal/features"
    "exoplanet/internal/render"
)

type fieldView struct {
    features.Field
    Text   string
    Slider string
}

func fieldViews(panel *features.Panel) []fieldView {
    out := make([]fieldView, 0, len(panel.Pairs()))
    for _, p := range panel.Pairs() {
        out = append(out, fieldView{Field: p.Field, Text: p.Text, Slider: features.FormatNumber(p.Slider)})
    }
    return out
}

func (s *Server) renderManual(c *gin.Context, status int, panel *features.Panel, result render.Block) {
    c.HTML(status, "manual.tmpl", gin.H{
        "Fields":       fieldViews(panel),
        "Result":       result,
        "ShowBackLink": result.RevealsNav(),
    })
}

func (s *Server) manualPage(c *gin.Context) {
    s.renderManual(c, http.StatusOK, features.NewPanel(features.ManualFields), render.Block{})
}

func (s *Server) submitManual(c *gin.Context) {
    panel := features.NewPanel(features.ManualFields)
    for _, p := range panel.Pairs() {
        // the slider lands first so a posted text value, which is what gets
        // sent, still wins
        if raw, ok := c.GetPostForm(p.Field.SliderID()); ok {
            if v, ok := features.ParseNumber(raw); ok { p.Slide(v) }
        }
        if text, ok := c.GetPostForm(p.Field.ID); ok { p.Type(text) }
    }

    slot := render.NewSlot("results-display")
    v, err := features.FromManual(panel.Text)
    if err != nil {
        slot.Render(render.InvalidFields())
        s.renderManual(c, http.StatusUnprocessableEntity, panel, slot.Current())
        return
    }

    label, err := s.predictor.Display(c.Request.Context(), v, slot)
    if err != nil {
        s.logger.Warn("manual prediction failed", zap.Error(err))
    } else {
        s.logger.Info("manual prediction", zap.String("label", string(label)))
    }
    s.renderManual(c, http.StatusOK, panel, slot.Current())
}

type syncRequest struct {
    Field  string  `json:"field" binding:"required"`
    Source string  `json:"source" binding:"required,oneof=text slider"`
    Text   string  `json:"text"`
    Slider float64 `json:"slider"`
}

type syncResponse struct {
    Field  string  `json:"field"`
    Text   string  `json:"text"`
    Slider float64 `json:"slider"`
    Moved  bool    `json:"moved"`
}

// syncPair applies one slider or text change to a pair whose current state
// the page sends along, and returns the pair after synchronization.
func (s *Server) syncPair(c *gin.Context) {
    var req syncRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    panel := features.NewPanel(features.ManualFields)
    pair, ok := panel.Pair(req.Field)
    if !ok {
        c.JSON(http.StatusNotFound, gin.H{"error": "unknown field: " + req.Field})
        return
    }
    pair.Text, pair.Slider = req.Text, req.Slider

    moved := true
    switch req.Source {
    case "slider":
        pair.Slide(req.Slider)
    default:
        moved = pair.Type(req.Text)
    }
    c.JSON(http.StatusOK, syncResponse{Field: req.Field, Text: pair.Text, Slider: pair.Slider, Moved: moved})
}

var errNoFile = errors.New("no CSV file uploaded")

// readUpload reads the uploaded CSV fully into memory.
func (s *Server) readUpload(c *gin.Context) (string, error) {
    fh, err := c.FormFile("csv_file")
    if err != nil { return "", errNoFile }
    if fh.Size > s.cfg.MaxUploadBytes {
        return "", fmt.Errorf("file is larger than %d bytes", s.cfg.MaxUploadBytes)
    }
    f, err := fh.Open()
    if err != nil { return "", err }
    defer f.Close()

    raw, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
    if err != nil { return "", err }
    if int64(len(raw)) > s.cfg.MaxUploadBytes {
        return "", fmt.Errorf("file is larger than %d bytes", s.cfg.MaxUploadBytes)
    }
    if len(raw) > 0 && !isText(mimetype.Detect(raw)) {
        return "", fmt.Errorf("%s is not a text file", fh.Filename)
    }
    return string(raw), nil
}

func isText(mt *mimetype.MIME) bool {
    for m := mt; m != nil; m = m.Parent() {
        if m.Is("text/plain") { return true }
    }
    return false
}

func wantsStream(c *gin.Context) bool {
    return strings.Contains(c.GetHeader("Accept"), "text/event-stream")
}

func (s *Server) uploadCSV(c *gin.Context) {
    content, err := s.readUpload(c)
    if err != nil {
        s.logger.Info("upload rejected", zap.Error(err))
        status := render.Warning(uploadMessage(err))
        if wantsStream(c) {
            sink := newStreamSink(c)
            sink.Status(status)
            sink.done(nil, err)
            return
        }
        c.HTML(http.StatusBadRequest, "csv.tmpl", gin.H{"Status": status})
        return
    }

    // a started batch runs to completion even if the client goes away
    ctx := context.WithoutCancel(c.Request.Context())

    if wantsStream(c) {
        sink := newStreamSink(c)
        report, err := s.batch.Run(ctx, content, sink)
        sink.done(report, err)
        return
    }

    sink := &pageSink{}
    report, err := s.batch.Run(ctx, content, sink)
    view := gin.H{"Status": sink.status, "Rows": sink.rows, "ShowBackLink": sink.revealsNav()}
    if err == nil {
        view["Counts"] = report.Counts()
    }
    c.HTML(http.StatusOK, "csv.tmpl", view)
}

func uploadMessage(err error) string {
    if errors.Is(err, errNoFile) { return "No CSV file uploaded." }
    return "Upload rejected: " + err.Error()
}

type sampleQuery struct {
    Rows int   `form:"rows" binding:"omitempty,gte=1,lte=1000"`
    Seed int64 `form:"seed"`
}

func (s *Server) sampleCSV(c *gin.Context) {
    var q sampleQuery
    if err := c.ShouldBindQuery(&q); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if q.Rows == 0 { q.Rows = 25 }
    if q.Seed == 0 { q.Seed = time.Now().UnixNano() }

    c.Header("Content-Type", "text/csv; charset=utf-8")
    c.Header("Content-Disposition", `attachment; filename="koi_sample.csv"`)
    c.Status(http.StatusOK)
    opts := data.CatalogOptions{Rows: q.Rows, InvalidRate: 0.05, Seed: q.Seed}
    if err := data.GenerateCatalog(c.Writer, opts); err != nil {
        s.logger.Error("sample generation failed", zap.Error(err))
    }
}
