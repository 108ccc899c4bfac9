// Package schemas embeds the JSON schemas shipped with the binary.
package schemas

import "embed"

//go:embed *.json
var FS embed.FS

// FixtureFile is the name of the competition fixture schema inside FS
const FixtureFile = "fixture.schema.json"
