// Package docs holds the guides shipped with the binary. They are the
// default content source; a directory or HTTP source can replace them at
// runtime without touching the catalog.
package docs

import "embed"

//go:embed *.md
var Files embed.FS
