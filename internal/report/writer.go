package report

import (
	"io"
	"time"

	"github.com/nao1215/netprobe/internal/model"
)

// Writer outputs a probe result.
type Writer interface {
	// Write renders result to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(result model.ScanResult) (int, error)
}

// MultiWriter writes to multiple Writers in order.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the result to all configured Writers.
// Returns the total bytes written and stops on the first error.
func (m *MultiWriter) Write(result model.ScanResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer

	// now returns the time stamped on the report.
	now func() time.Time
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output, now: time.Now}
}

// setClock replaces the report clock; nil is ignored.
func (b *baseWriter) setClock(now func() time.Time) {
	if now != nil {
		b.now = now
	}
}
