// Package studiohub holds assets that are embedded into the binary.
package studiohub

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
