// Package migrations embeds the goose SQL migrations so binaries can apply
// them without a checkout.
package migrations

import "embed"

// FS holds every *.sql migration in this directory
//
//go:embed *.sql
var FS embed.FS
