package report

import (
	"fmt"
	"io"
	"time"

	"github.com/nao1215/netprobe/internal/model"
)

// TimestampLayout is the layout of the timestamp prefix of SimpleWriter.
const TimestampLayout = "2006-01-02 15:04:05"

// SimpleWriter writes one line per result:
//
//	[2025-01-02 15:04:05] Scan result: ScanResult(protocol=SSH, destination=example.com, status=UP, response_time=12.34ms)
type SimpleWriter struct {
	baseWriter

	// compact selects ScanResult.Compact instead of ScanResult.String.
	compact bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithClock sets the clock used for the timestamp prefix.
func WithClock(now func() time.Time) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.setClock(now)
	}
}

// WithCompact switches to the bracketed short form of the result.
func WithCompact(compact bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.compact = compact
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the timestamped result line.
func (w *SimpleWriter) Write(result model.ScanResult) (int, error) {
	rendered := result.String()
	if w.compact {
		rendered = result.Compact()
	}
	return fmt.Fprintf(w.output, "[%s] Scan result: %s\n", w.now().Format(TimestampLayout), rendered)
}
