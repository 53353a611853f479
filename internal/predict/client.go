package predict

import (
    "bytes"
    "context"
    "errors"
    "fmt"
    "io"
    "net/http"
    "time"

    "github.com/goccy/go-json"
    "go.uber.org/zap"

    "exoplanet/internal/data"
    "exoplanet/internal/features"
    "exoplanet/internal/render"
)

const maxResponseBytes = 1 << 20

var errNullBody = errors.New("response body is null")

// Error is the single failure state of a prediction call, whether the
// transport failed, the body was not JSON, or the endpoint reported an error.
type Error struct {
    Msg string
    Err error
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Err }

type request struct {
    Features []float64 `json:"features"`
}

type response struct {
    Prediction any `json:"prediction"`
    Error      any `json:"error"`
}

type Client struct {
    endpoint string
    apiKey   string
    timeout  time.Duration
    http     *http.Client
    logger   *zap.Logger
}

type Option func(*Client)

func WithAPIKey(key string) Option { return func(c *Client) { c.apiKey = key } }

// WithTimeout bounds each request. Zero leaves the transport defaults alone.
func WithTimeout(d time.Duration) Option {
    return func(c *Client) { c.timeout = d }
}

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.logger = l } }

func NewClient(endpoint string, opts ...Option) *Client {
    c := &Client{
        endpoint: endpoint,
        http:     &http.Client{},
        logger:   zap.NewNop(),
    }
    for _, o := range opts { o(c) }
    if c.logger == nil { c.logger = zap.NewNop() }
    if c.timeout > 0 {
        hc := *c.http
        hc.Timeout = c.timeout
        c.http = &hc
    }
    return c
}

func (c *Client) Endpoint() string { return c.endpoint }

// Predict sends v to the endpoint once and returns the label it reports.
func (c *Client) Predict(ctx context.Context, v features.Vector) (data.Label, error) {
    if err := v.Validate(); err != nil {
        return "", &Error{Msg: err.Error(), Err: err}
    }
    body, err := json.Marshal(request{Features: v.Values})
    if err != nil {
        return "", &Error{Msg: err.Error(), Err: err}
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
    if err != nil {
        return "", &Error{Msg: err.Error(), Err: err}
    }
    req.Header.Set("Content-Type", "application/json")
    if c.apiKey != "" { req.Header.Set("X-API-Key", c.apiKey) }

    start := time.Now()
    resp, err := c.http.Do(req)
    if err != nil {
        c.logger.Warn("prediction request failed", zap.String("origin", v.Origin.String()), zap.Error(err))
        return "", &Error{Msg: "prediction service unreachable: " + err.Error(), Err: err}
    }
    defer resp.Body.Close()

    // a null body leaves out nil; anything else that is not an object fails to decode
    var out *response
    err = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out)
    if err == nil && out == nil { err = errNullBody }
    if err != nil {
        c.logger.Warn("undecodable prediction response", zap.Int("status", resp.StatusCode), zap.Error(err))
        return "", &Error{Msg: fmt.Sprintf("invalid response from prediction service (HTTP %d)", resp.StatusCode), Err: err}
    }
    if msg, failed := errorField(out.Error); failed {
        c.logger.Info("prediction service reported error", zap.Int("status", resp.StatusCode), zap.String("error", msg))
        return "", &Error{Msg: msg}
    }

    label := labelField(out.Prediction)
    c.logger.Debug("prediction",
        zap.String("origin", v.Origin.String()),
        zap.Float64s("features", v.Values),
        zap.String("label", string(label)),
        zap.Duration("took", time.Since(start)),
    )
    return label, nil
}

// Display shows the pending block in target, runs Predict, and replaces the
// pending block with the outcome or the error.
func (c *Client) Display(ctx context.Context, v features.Vector, target render.Target) (data.Label, error) {
    target.Render(render.Pending())
    label, err := c.Predict(ctx, v)
    if err != nil {
        target.Render(render.Error(err.Error()))
        return "", err
    }
    target.Render(render.ForLabel(label))
    return label, nil
}

// errorField treats the error member the way a truthiness check would:
// absent, null, false and "" mean no error.
func errorField(v any) (string, bool) {
    switch e := v.(type) {
    case nil:
        return "", false
    case string:
        return e, e != ""
    case bool:
        return "true", e
    case float64:
        return fmt.Sprint(e), e != 0
    default:
        return fmt.Sprint(e), true
    }
}

func labelField(v any) data.Label {
    switch p := v.(type) {
    case nil:
        return ""
    case string:
        return data.Label(p)
    default:
        return data.Label(fmt.Sprint(p))
    }
}
