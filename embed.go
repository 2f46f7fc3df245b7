package embedded

import "embed"

//go:embed "views"
var Views embed.FS

//go:embed "migrations"
var SampleMigrations embed.FS
