// Package data embeds the sample star system shipped with the viewer.
package data

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed sol.json
var solJSON []byte

// SampleSystem returns a reader over the embedded Sol system document
func SampleSystem() io.Reader {
	return bytes.NewReader(solJSON)
}
