// Package migrations embeds the SQL migration files so they can be applied
// with goose at server bootstrap without relying on a filesystem path.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
