// Package migrations embeds the admin store schema.
package migrations

import "embed"

// FS holds the *.sql migrations applied at startup.
//
//go:embed *.sql
var FS embed.FS
