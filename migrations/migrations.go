// Package migrations embeds the MySQL schema migrations run by golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
