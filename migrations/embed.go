// Package migrations holds the goose SQL migrations for the persons and
// person_tags tables. The migrate subcommand, startup auto-migration and the
// integration tests all read them from FS.
package migrations

import "embed"

// FS is the embedded migration directory, ready for goose.NewProvider.
//
//go:embed *.sql
var FS embed.FS
