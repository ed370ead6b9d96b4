// Released under an MIT license. See LICENSE.

// Package boot provides the wasabi definitions written in wasabi.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.lisp
var script string //nolint:gochecknoglobals

// Script returns the boot script for wasabi.
func Script() string {
	return script
}
