// Package audit emits one structured record per inventory operation,
// success or failure. The records are an observability sink, not part of
// operation correctness.
package audit

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger writes operation audit records.
type Logger struct {
	zl zerolog.Logger
}

// New creates a Logger writing JSON records to w.
func New(w io.Writer) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zl := zerolog.New(w).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// NewConsole creates a Logger with human-readable console output.
func NewConsole() *Logger {
	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	zl := zerolog.New(out).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Nop returns a Logger that discards every record.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Record emits an audit record for one operation against one product.
// Details may be nil.
func (l *Logger) Record(operation, productID string, details map[string]any) {
	l.zl.Info().
		Str("operation", operation).
		Str("product_id", productID).
		Fields(details).
		Msg("operation")
}
