// Package migrations embeds the SQL migration files for the SQLite backend.
// Files follow the goose naming and annotation conventions.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
