// Package sql embeds the database schema.
package sql

import (
	_ "embed"
)

//go:embed schema.sql
var schema string

// Schema returns the SQL applied to an empty database.
func Schema() string {
	return schema
}
