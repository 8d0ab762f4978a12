// Package catalog loads ingredient and tag reference data and searches the
// ingredient catalog.
package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/mign0n/foodgram-project/internal/database"
)

// Format is the encoding of a catalog source.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("cannot infer catalog format from %q", path)
}

var ErrEmptyCatalog = errors.New("catalog contains no entries")

var hexColorRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("tagcolor", func(fl validator.FieldLevel) bool {
		return hexColorRe.MatchString(fl.Field().String())
	})
	return v
}

type Ingredient struct {
	Name            string `json:"name" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}

type Tag struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"required,tagcolor"`
	Slug  string `json:"slug" validate:"required,max=200"`
}

// ParseIngredients reads ingredients from r. CSV input has one
// "name,measurement_unit" row per ingredient and no header.
func ParseIngredients(r io.Reader, format Format) ([]Ingredient, error) {
	var entries []Ingredient
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&entries); err != nil {
			return nil, fmt.Errorf("decoding ingredients: %w", err)
		}
	case FormatCSV:
		records, err := readCSV(r, 2)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			entries = append(entries, Ingredient{Name: rec[0], MeasurementUnit: rec[1]})
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format: %q", format)
	}

	for i := range entries {
		entries[i].Name = strings.TrimSpace(entries[i].Name)
		entries[i].MeasurementUnit = strings.TrimSpace(entries[i].MeasurementUnit)
		if err := validate.Struct(entries[i]); err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", i+1, err)
		}
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return entries, nil
}

// ParseTags reads tags from r. CSV input has one "name,color,slug" row per
// tag and no header.
func ParseTags(r io.Reader, format Format) ([]Tag, error) {
	var entries []Tag
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&entries); err != nil {
			return nil, fmt.Errorf("decoding tags: %w", err)
		}
	case FormatCSV:
		records, err := readCSV(r, 3)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			entries = append(entries, Tag{Name: rec[0], Color: rec[1], Slug: rec[2]})
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format: %q", format)
	}

	for i := range entries {
		entries[i].Name = strings.TrimSpace(entries[i].Name)
		entries[i].Color = strings.TrimSpace(entries[i].Color)
		entries[i].Slug = strings.TrimSpace(entries[i].Slug)
		if err := validate.Struct(entries[i]); err != nil {
			return nil, fmt.Errorf("tag %d: %w", i+1, err)
		}
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return entries, nil
}

func readCSV(r io.Reader, fields int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fields
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return records, nil
}

// Fetcher retrieves a remote catalog.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// Open returns a reader for source, which is either a local path or an
// http(s) URL fetched through f.
func Open(ctx context.Context, source string, f Fetcher) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if f == nil {
			return nil, errors.New("no fetcher configured for remote catalog")
		}
		return f.Fetch(ctx, source)
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	return file, nil
}

// LoadIngredients stores entries, skipping ones that already exist. It
// returns the number of entries processed.
func LoadIngredients(ctx context.Context, q database.Querier, entries []Ingredient) (int, error) {
	for i, e := range entries {
		if _, err := q.CreateIngredient(ctx, database.CreateIngredientParams{
			Name:            e.Name,
			MeasurementUnit: e.MeasurementUnit,
		}); err != nil {
			return i, fmt.Errorf("storing ingredient %q: %w", e.Name, err)
		}
	}
	return len(entries), nil
}

// LoadTags stores entries, skipping slugs that already exist.
func LoadTags(ctx context.Context, q database.Querier, entries []Tag) (int, error) {
	for i, e := range entries {
		if _, err := q.CreateTag(ctx, database.CreateTagParams{
			Name:  e.Name,
			Color: e.Color,
			Slug:  e.Slug,
		}); err != nil {
			return i, fmt.Errorf("storing tag %q: %w", e.Slug, err)
		}
	}
	return len(entries), nil
}
