// Package export renders a shopping list as a downloadable CSV or plain-text
// document.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/mign0n/foodgram-project/internal/shopping"
)

type Format string

const (
	FormatCSV Format = "csv"
	FormatTXT Format = "txt"

	DefaultFormat = FormatTXT
	FormatParam   = "format"

	fileBaseName = "recipes_from_shopping_cart"
)

// Header lists the exported columns in order.
var Header = []string{"id", "name", "amount", "measurement_unit"}

// ParseFormat maps a user supplied selector to a Format. Matching is case
// insensitive.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, true
	case FormatTXT:
		return FormatTXT, true
	}
	return "", false
}

// Negotiate picks the export format for r. The format query parameter wins
// over the Accept header. Anything unrecognised falls back to DefaultFormat.
func Negotiate(r *http.Request) Format {
	if f, ok := ParseFormat(r.URL.Query().Get(FormatParam)); ok {
		return f
	}

	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case "text/csv":
			return FormatCSV
		case "text/plain":
			return FormatTXT
		}
	}

	return DefaultFormat
}

func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "text/plain"
}

func (f Format) FileName() string {
	return fmt.Sprintf("%s.%s", fileBaseName, f)
}

func (f Format) ContentDisposition() string {
	return fmt.Sprintf("attachment; filename=%q", f.FileName())
}

func record(item shopping.Item) []string {
	return []string{
		strconv.FormatInt(item.ID, 10),
		item.Name,
		strconv.FormatInt(item.Amount, 10),
		item.MeasurementUnit,
	}
}

// Render writes items to w in the given format, header first.
func Render(w io.Writer, f Format, items []shopping.Item) error {
	switch f {
	case FormatCSV:
		return renderCSV(w, items)
	case FormatTXT:
		return renderTXT(w, items)
	}
	return fmt.Errorf("unsupported export format: %q", f)
}

func renderCSV(w io.Writer, items []shopping.Item) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, item := range items {
		if err := writer.Write(record(item)); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func renderTXT(w io.Writer, items []shopping.Item) error {
	var b strings.Builder
	b.WriteString(strings.Join(Header, " "))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(strings.Join(record(item), " "))
		b.WriteString("\n")
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing text: %w", err)
	}
	return nil
}
