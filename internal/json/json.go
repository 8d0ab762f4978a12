// Package json contains utilities for handling JSON request bodies.
package json

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// ErrTrailingData is returned when a body holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON object")

// DecodeStrict decodes exactly one JSON value from r into dst, rejecting
// unknown fields.
func DecodeStrict(r io.Reader, dst any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}
	if decoder.More() {
		return ErrTrailingData
	}
	return nil
}

// Write encodes v to w.
func Write(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
