package configs

import "embed"

// Schemas holds the JSON schemas so binaries validate without the source tree
//
//go:embed schemas/*.json
var Schemas embed.FS

// SchemasPrefix is the repository-relative directory Schemas is rooted at
const SchemasPrefix = "configs/"
