// Package convert implements best-effort coercion of dynamic values for
// NornicDB's apoc.convert.* functions.
//
// Every entry point takes a single value of unknown runtime type and either
// produces the requested representation or reports "null" (ok == false).
// A bad scalar never turns into an error: it is logged through the injected
// Logger and becomes null. The only error is asking ToTypedList for an element
// type outside {INTEGER, FLOAT, STRING, BOOLEAN, NODE, RELATIONSHIP}.
//
// Example Usage:
//
//	c := convert.New(convert.WithLogger(convert.NewZapLogger(zapLogger)))
//
//	n, _ := c.ToInteger("0x1A")                     // 26
//	f, _ := c.ToDouble("0x3FF0000000000000")        // 1.0 (IEEE-754 bit pattern)
//	ids, _ := c.ToIntegerList([]any{"1", "x", 3.9}) // [1, nil, 3]
//	set, _ := c.ToSet([]any{1, 2, 1, 3, 2})         // [1, 2, 3]
//
// Values are classified once (see Of) and coercers switch on the resulting
// Tag. A Converter holds no mutable state, so one instance can be shared by
// any number of goroutines.
package convert

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/orneryd/nornicdb-convert/pkg/config"
)

// DefaultListSizeHint is the initial capacity used when draining iterators.
const DefaultListSizeHint = 100

// Converter performs the conversions. The zero value is not usable; call New.
type Converter struct {
	logger      Logger
	logFailures bool
	sizeHint    int
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the diagnostic logger. nil disables logging.
func WithLogger(l Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// WithListSizeHint sets the capacity hint for drained iterables. It never
// limits the length of a result.
func WithListSizeHint(n int) Option {
	return func(c *Converter) {
		if n > 0 {
			c.sizeHint = n
		}
	}
}

// WithLogParseFailures toggles diagnostics for unparseable input.
func WithLogParseFailures(enabled bool) Option {
	return func(c *Converter) {
		c.logFailures = enabled
	}
}

// New creates a Converter. By default diagnostics go to StdLogger.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger:      StdLogger{},
		logFailures: true,
		sizeHint:    DefaultListSizeHint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromConfig builds a Converter from loaded configuration.
func FromConfig(cfg *config.Config) (*Converter, error) {
	if cfg == nil {
		cfg = config.LoadDefaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var logger Logger
	switch cfg.Logger {
	case config.LoggerNop:
		logger = NopLogger{}
	case config.LoggerZap:
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: log level %q: %w", ErrInvalidConfig, cfg.LogLevel, err)
		}
		zc := zap.NewProductionConfig()
		zc.Level = level
		zl, err := zc.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build zap logger: %w", err)
		}
		logger = NewZapLogger(zl.Named("convert"))
	default:
		logger = StdLogger{}
	}

	return New(
		WithLogger(logger),
		WithListSizeHint(cfg.ListSizeHint),
		WithLogParseFailures(cfg.LogParseFailures),
	), nil
}
