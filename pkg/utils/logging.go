package utils

import (
    "os"
    "path/filepath"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

// Logger returns a JSON production logger on stdout. When logFile is set the
// same entries are also appended to that file; if it cannot be opened the
// logger falls back to stdout only.
func Logger(logFile string, debug bool) *zap.Logger {
    lvl := zapcore.InfoLevel
    if debug { lvl = zapcore.DebugLevel }

    encCfg := zap.NewProductionEncoderConfig()
    encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
    enc := zapcore.NewJSONEncoder(encCfg)
    consoleCore := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl)

    if logFile == "" {
        return zap.New(consoleCore)
    }
    _ = os.MkdirAll(filepath.Dir(logFile), 0o755)
    f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        l := zap.New(consoleCore)
        l.Warn("log file unavailable, logging to stdout only", zap.String("path", logFile), zap.Error(err))
        return l
    }
    fileCore := zapcore.NewCore(enc, zapcore.AddSync(f), lvl)
    return zap.New(zapcore.NewTee(fileCore, consoleCore))
}
