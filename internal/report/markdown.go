package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/netprobe/internal/model"
)

// MarkdownWriter outputs results as GitHub Flavored Markdown built with
// nao1215/markdown.
type MarkdownWriter struct {
	baseWriter
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownClock sets the clock used for the scan date row.
func WithMarkdownClock(now func() time.Time) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.setClock(now)
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the result as a Markdown document.
func (w *MarkdownWriter) Write(result model.ScanResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeAlert(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the property table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result model.ScanResult) {
	md.H1("netprobe Report")
	md.PlainText("")

	port := "-"
	if result.Protocol.Supported() {
		port = strconv.Itoa(result.Protocol.Port())
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Destination", "`" + result.Destination + "`"},
			{"Protocol", result.Protocol.String()},
			{"Port", port},
			{"Status", statusText(result.Status)},
			{"Response Time", fmt.Sprintf("%.2f ms", result.ResponseTime)},
			{"Scan Date", w.now().Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")
}

// statusText decorates the status for display.
func statusText(s model.Status) string {
	switch s {
	case model.StatusUp:
		return "✅ UP"
	case model.StatusDown:
		return "❌ DOWN"
	case model.StatusUnsupported:
		return "⚠️ UNSUPPORTED"
	default:
		return "❔ UNKNOWN"
	}
}

// writeAlert writes a one-line verdict.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result model.ScanResult) {
	switch result.Status {
	case model.StatusUp:
		md.Tip(fmt.Sprintf("%s answered on port %d.", result.Destination, result.Protocol.Port()))
	case model.StatusDown:
		md.Warningf("%s did not answer on port %d.", result.Destination, result.Protocol.Port())
	case model.StatusUnsupported:
		md.Cautionf("%s is not a supported protocol; no connection was made.", result.Protocol)
	default:
		md.Note("The probe has not been executed.")
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [netprobe](https://github.com/nao1215/netprobe)*")
}
