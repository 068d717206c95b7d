// Package export renders task lists into document formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/textstore"
)

// Format names an export format.
type Format string

// Supported export formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// AllFormats returns every supported format.
func AllFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatCSV, FormatPDF}
}

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllFormats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, s)
}

// Binary reports whether the format produces non-text output.
func (f Format) Binary() bool {
	return f == FormatPDF
}

// document is the serialized shape for structured formats.
type document struct {
	Tasks []domain.Task `json:"tasks" yaml:"tasks"`
}

// Render writes tasks to w in the given format.
func Render(w io.Writer, format Format, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}

	switch format {
	case FormatText:
		return renderText(w, tasks)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document{Tasks: tasks})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Tasks: tasks}); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatCSV:
		return renderCSV(w, tasks)
	case FormatPDF:
		return renderPDF(w, tasks)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

func renderText(w io.Writer, tasks []domain.Task) error {
	for _, t := range tasks {
		if _, err := fmt.Fprintln(w, t.ListLine()); err != nil {
			return err
		}
	}
	return nil
}

func renderCSV(w io.Writer, tasks []domain.Task) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"index", "status", "description"})
	for _, t := range tasks {
		_ = cw.Write([]string{strconv.Itoa(t.Index), domain.Display(t.Done), t.Description})
	}
	cw.Flush()
	return cw.Error()
}

// renderPDF writes a one-column checklist.
func renderPDF(w io.Writer, tasks []domain.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Todo List")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if len(tasks) == 0 {
		pdf.MultiCell(0, 6, "No tasks yet!", "0", "L", false)
	}
	for _, t := range tasks {
		pdf.MultiCell(0, 6, tr(t.ListLine()), "0", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// Ensure Exporter implements domain.TaskExporter.
var _ domain.TaskExporter = Exporter{}

// Exporter adapts Render to domain.TaskExporter.
type Exporter struct{}

// Export parses format and renders tasks to w.
func (Exporter) Export(w io.Writer, format string, tasks []domain.Task) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	return Render(w, f, tasks)
}

// IsBinary reports whether format is a binary format. Unknown formats are not binary.
func (Exporter) IsBinary(format string) bool {
	f, err := ParseFormat(format)
	return err == nil && f.Binary()
}

// WriteFile replaces path with data through a temporary sibling file.
func (Exporter) WriteFile(path string, data []byte) error {
	return textstore.WriteFileAtomic(path, data)
}
