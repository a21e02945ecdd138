// Package migrations embeds the SQL migration files for the WayOut schema
// (users, profiles, trips, reviews) so they can be applied programmatically
// at server bootstrap and in test setup.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to a goose.NewProvider instead of relying on a filesystem
// path at runtime.
//
//go:embed *.sql
var FS embed.FS
