// Package db carries the schema migrations compiled into every binary.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
