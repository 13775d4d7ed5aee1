package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rgehrsitz/herdsim/internal/domain"
)

// Formatter renders a projection in one output format
type Formatter interface {
	Name() string
	Format(result *domain.ProjectionResult) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(result *domain.ProjectionResult) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(result *domain.ProjectionResult) ([]byte, error) {
	return f.F(result)
}

type registration struct {
	formatter   Formatter
	contentType string
	extension   string
}

var formatters = map[string]registration{
	"console":     {ConsoleFormatter{}, "text/plain; charset=utf-8", "txt"},
	"json":        {JSONFormatter{Pretty: true}, "application/json", "json"},
	"csv":         {CSVYearlyFormatter{}, "text/csv; charset=utf-8", "csv"},
	"csv-monthly": {CSVMonthlyFormatter{}, "text/csv; charset=utf-8", "csv"},
	"html":        {HTMLFormatter{}, "text/html; charset=utf-8", "html"},
	"pdf":         {PDFFormatter{}, "application/pdf", "pdf"},
}

// GetFormatterByName returns the registered formatter or nil
func GetFormatterByName(name string) Formatter {
	if r, ok := formatters[name]; ok {
		return r.formatter
	}
	return nil
}

// FormatterNames lists the registered formats in sorted order
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ContentType is the HTTP content type for a registered format
func ContentType(name string) string {
	if r, ok := formatters[name]; ok {
		return r.contentType
	}
	return "application/octet-stream"
}

// Extension is the file extension for a registered format
func Extension(name string) string {
	if r, ok := formatters[name]; ok {
		return r.extension
	}
	return "out"
}

// WriteFormatted formats the result and writes it to a timestamped file in the
// working directory, returning the file name.
func WriteFormatted(f Formatter, result *domain.ProjectionResult, ext string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("herd_projection_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
