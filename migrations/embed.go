// Package migrations ships the schema with the binary so no source tree is needed at runtime.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"
