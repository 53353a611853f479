package web

import (
    "fmt"
    "html/template"
    "net/http"

    "github.com/gin-gonic/gin"
    "github.com/goccy/go-json"

    "exoplanet/internal/batch"
    "exoplanet/internal/render"
)

func rowID(i int) string { return fmt.Sprintf("result-row-%d", i) }

type rowView struct {
    ID   string
    slot *render.Slot
}

func (r rowView) HTML() template.HTML { return r.slot.Current().HTML() }

// pageSink collects the container for a full-page response.
type pageSink struct {
    status *render.Block
    rows   []rowView
}

func (p *pageSink) Status(b render.Block) { p.status = &b }

func (p *pageSink) Reset() {
    p.status = nil
    p.rows = nil
}

func (p *pageSink) Row(i int) render.Target {
    slot := render.NewSlot(rowID(i))
    p.rows = append(p.rows, rowView{ID: slot.ID, slot: slot})
    return slot
}

func (p *pageSink) revealsNav() bool {
    for _, r := range p.rows {
        if r.slot.Current().RevealsNav() { return true }
    }
    return false
}

type blockEvent struct {
    HTML      string `json:"html"`
    RevealNav bool   `json:"reveal_nav"`
}

type rowEvent struct {
    Row       int    `json:"row"`
    ID        string `json:"id"`
    HTML      string `json:"html"`
    RevealNav bool   `json:"reveal_nav"`
}

type doneEvent struct {
    Rows   int            `json:"rows"`
    Counts map[string]int `json:"counts,omitempty"`
    Error  string         `json:"error,omitempty"`
}

// streamSink pushes every container change to the browser as a
// Server-Sent Event as soon as it happens.
type streamSink struct {
    c *gin.Context
}

func newStreamSink(c *gin.Context) *streamSink {
    c.Header("Cache-Control", "no-cache")
    c.Header("X-Accel-Buffering", "no")
    c.Status(http.StatusOK)
    return &streamSink{c: c}
}

// emit encodes payload itself so the event data is the exact JSON the
// page script parses.
func (s *streamSink) emit(event string, payload any) {
    raw, err := json.Marshal(payload)
    if err != nil { raw = []byte("{}") }
    s.c.SSEvent(event, string(raw))
    s.c.Writer.Flush()
}

func (s *streamSink) Status(b render.Block) {
    s.emit("status", blockEvent{HTML: string(b.HTML()), RevealNav: b.RevealsNav()})
}

func (s *streamSink) Reset() { s.emit("reset", blockEvent{}) }

func (s *streamSink) Row(i int) render.Target {
    return render.TargetFunc(func(b render.Block) {
        s.emit("row", rowEvent{Row: i, ID: rowID(i), HTML: string(b.HTML()), RevealNav: b.RevealsNav()})
    })
}

func (s *streamSink) done(report *batch.Report, err error) {
    ev := doneEvent{}
    if report != nil {
        ev.Rows = len(report.Rows)
        ev.Counts = report.Counts()
    }
    if err != nil { ev.Error = err.Error() }
    s.emit("done", ev)
}
