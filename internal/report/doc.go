// Package report renders probe results.
//
// This package contains writers for different output formats:
//   - SimpleWriter: the timestamped log line for terminal display
//   - JSONWriter and FullJSONWriter: structured JSON for tool integration
//   - MarkdownWriter: a GitHub Flavored Markdown summary
//
// Writers are the observers of a probe: the caller runs the probe, receives
// the model.ScanResult and hands it to a Writer. The prober itself never
// writes output.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed with MultiWriter.
package report
