package migrations

import "embed"

// FS holds the versioned SQL migrations applied at start-up
//
//go:embed *.sql
var FS embed.FS
