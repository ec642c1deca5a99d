// Package migrations embeds the PostgreSQL schema migrations so the binaries
// do not depend on the working directory.
package migrations

import "embed"

// FS holds the numbered up/down SQL files
//
//go:embed *.sql
var FS embed.FS
