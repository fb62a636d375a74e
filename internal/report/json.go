package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/nao1215/netprobe/internal/model"
)

// JSONWriter outputs results in JSON format.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithJSONClock sets the clock used for the scanned_at field of
// FullJSONWriter.
func WithJSONClock(now func() time.Time) JSONWriterOption {
	return func(w *JSONWriter) {
		w.setClock(now)
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the bare result object.
func (w *JSONWriter) Write(result model.ScanResult) (int, error) {
	return w.writeJSON(result)
}

// writeJSON marshals v and writes it followed by a newline.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONReport wraps a result with run metadata.
type JSONReport struct {
	// Version is the netprobe version that produced the report.
	Version string `json:"version"`

	// ScannedAt is when the report was written.
	ScannedAt time.Time `json:"scanned_at"`

	// Port is the TCP port that was probed; 0 for unsupported protocols.
	Port int `json:"port"`

	// Result is the probe result.
	Result model.ScanResult `json:"result"`
}

// NewJSONReport creates a JSONReport for result.
func NewJSONReport(result model.ScanResult, version string, scannedAt time.Time) *JSONReport {
	return &JSONReport{
		Version:   version,
		ScannedAt: scannedAt,
		Port:      result.Protocol.Port(),
		Result:    result,
	}
}

// FullJSONWriter outputs results wrapped in a JSONReport.
type FullJSONWriter struct {
	*JSONWriter

	// version is the netprobe version string.
	version string
}

// NewFullJSONWriter creates a writer for results with metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write outputs the result wrapped with metadata.
func (w *FullJSONWriter) Write(result model.ScanResult) (int, error) {
	return w.writeJSON(NewJSONReport(result, w.version, w.now().UTC()))
}
