// Package wad inspects WAD containers: it validates and decodes the header,
// locates the segments that follow it and reads the title fields.
package wad

import (
	"wad-info/wad/wheader"
	"wad-info/wad/wsegment"
	"wad-info/wad/wtitle"
)

type (
	// Inspection is everything learnt about one file. Title is nil when the
	// title fields were not requested.
	Inspection struct {
		Path    string           `json:"path"`
		Header  wheader.Header   `json:"header"`
		Offsets wsegment.Offsets `json:"offsets"`
		Title   *wtitle.Info     `json:"title,omitempty"`
	}
	Result struct {
		Path       string
		Inspection *Inspection
		Err        error
	}
)

// GlobPattern matches WAD files regardless of extension case.
const GlobPattern = "*.[wW][aA][dD]"

func IsWADFile(bs []byte) bool {
	return wheader.IsValidMagicNumber(bs)
}
