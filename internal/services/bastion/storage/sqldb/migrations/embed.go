// Package migrations embeds the bastion schema, one directory per dialect.
package migrations

import "embed"

// FS contains embedded SQL migrations for bastion storage.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
