// Package migrations embeds the versioned schema for every supported driver.
// Each driver directory carries the same version numbers with dialect
// specific SQL.
package migrations

import "embed"

// FS holds postgres/*.sql and sqlite/*.sql
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
