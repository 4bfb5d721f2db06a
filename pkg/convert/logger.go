package convert

import (
	"encoding/json"
	"log"
	"sort"

	"go.uber.org/zap"
)

// Logger receives diagnostics for recoverable conversion failures.
//
// It follows the same minimal shape as the storage WAL logger so callers can
// bridge it to whatever logging library they use. Fields are a stable
// machine-readable contract: "op", "input" and "error".
type Logger interface {
	Log(level string, msg string, fields map[string]any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Log(string, string, map[string]any) {}

// StdLogger prints one JSON object per record through the stdlib log package.
type StdLogger struct {
	// Logger is the destination; nil means log.Default().
	Logger *log.Logger
}

func (l StdLogger) Log(level string, msg string, fields map[string]any) {
	out := l.Logger
	if out == nil {
		out = log.Default()
	}
	payload := map[string]any{
		"level": level,
		"msg":   msg,
	}
	for k, v := range fields {
		payload[k] = v
	}
	b, err := json.Marshal(payload)
	if err != nil {
		out.Printf("[convert] level=%s msg=%s fields=%v", level, msg, fields)
		return
	}
	out.Printf("[convert] %s", string(b))
}

// ZapLogger adapts a *zap.Logger. A nil Logger behaves like zap.NewNop().
type ZapLogger struct {
	Logger *zap.Logger
}

// NewZapLogger wraps l.
func NewZapLogger(l *zap.Logger) ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return ZapLogger{Logger: l}
}

func (l ZapLogger) Log(level string, msg string, fields map[string]any) {
	if l.Logger == nil {
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	zf := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		zf = append(zf, zap.Any(k, fields[k]))
	}
	switch level {
	case "debug":
		l.Logger.Debug(msg, zf...)
	case "info":
		l.Logger.Info(msg, zf...)
	case "warn":
		l.Logger.Warn(msg, zf...)
	default:
		l.Logger.Error(msg, zf...)
	}
}

// diagnose reports a recoverable failure. A panicking Logger is swallowed so
// the conversion result never depends on logging.
func (c *Converter) diagnose(op string, input any, err error) {
	if !c.logFailures || c.logger == nil {
		return
	}
	defer func() { _ = recover() }()
	c.logger.Log("error", "Converting "+op, map[string]any{
		"op":    op,
		"input": input,
		"error": err.Error(),
	})
}
