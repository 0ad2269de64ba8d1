// Package ids generates the short identifiers used for notes, mind map
// nodes, todo items and users. They stay short because every id ends up
// inside a size-limited cookie.
package ids

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	length   = 9
)

func New() string {
	return gonanoid.MustGenerate(alphabet, length)
}
