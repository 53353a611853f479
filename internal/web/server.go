package web

import (
    "embed"
    "html/template"
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "exoplanet/internal/batch"
    "exoplanet/internal/config"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Server struct {
    cfg       config.Config
    predictor batch.Predictor
    batch     *batch.Processor
    logger    *zap.Logger
    engine    *gin.Engine
}

// New wires the routes once. predictor serves both the manual form and the
// CSV batch.
func New(cfg config.Config, predictor batch.Predictor, logger *zap.Logger) *Server {
    if logger == nil { logger = zap.NewNop() }
    s := &Server{
        cfg:       cfg,
        predictor: predictor,
        batch:     batch.NewProcessor(predictor, logger.Named("batch")),
        logger:    logger,
    }

    r := gin.New()
    r.Use(gin.Recovery(), s.requestLogger())
    r.MaxMultipartMemory = cfg.MaxUploadBytes
    r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

    r.GET("/", s.page("landing.tmpl"))
    r.GET("/home", s.page("home.tmpl"))
    r.GET("/manual", s.manualPage)
    r.POST("/manual", s.submitManual)
    r.POST("/sync", s.syncPair)
    r.GET("/csv", s.page("csv.tmpl"))
    r.POST("/csv", s.uploadCSV)
    r.GET("/csv/sample", s.sampleCSV)
    r.GET("/healthz", s.health)

    s.engine = r
    return s
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) requestLogger() gin.HandlerFunc {
    return func(c *gin.Context) {
        start := time.Now()
        c.Next()
        s.logger.Info("http_request",
            zap.String("method", c.Request.Method),
            zap.String("path", c.Request.URL.Path),
            zap.Int("status", c.Writer.Status()),
            zap.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
            zap.String("client_ip", c.ClientIP()),
        )
    }
}

func (s *Server) page(name string) gin.HandlerFunc {
    return func(c *gin.Context) {
        c.HTML(http.StatusOK, name, gin.H{})
    }
}

func (s *Server) health(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"status": "ok", "endpoint": s.cfg.Endpoint})
}
