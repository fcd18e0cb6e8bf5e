// Package migrations embeds the SQL files that define the schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
