// Package builtin embeds the default pattern plugin definitions.
package builtin

import "embed"

//go:embed *.yaml
var defs embed.FS

// FS returns the embedded filesystem of built-in plugin definitions.
func FS() embed.FS {
	return defs
}
