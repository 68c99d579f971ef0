// Package migrations embeds the goose migration files for the server's
// PostgreSQL backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
