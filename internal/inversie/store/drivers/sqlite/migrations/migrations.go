// Package migrations embeds the SQLite schema migrations consumed by
// golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
