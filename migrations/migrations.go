// Package migrations embeds the SQL files that provision the Record Store.
package migrations

import "embed"

// FS holds one directory of migrations per supported driver.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
