// Package wtitle reads the title fields that sit at fixed positions inside the
// ticket and title metadata segments.
package wtitle

import (
	"encoding/hex"
	"fmt"
)

type (
	Info struct {
		ID      [8]byte  `json:"-"`
		Key     [16]byte `json:"-"`
		Version uint16   `json:"version"`
	}
)

const (
	// TitleIDOffset is relative to the start of the title metadata.
	TitleIDOffset = 396
	// TitleKeyOffset is relative to the start of the ticket.
	TitleKeyOffset = 447
	// TitleVersionOffset is relative to the start of the title metadata.
	TitleVersionOffset = 476

	TitleIDSize  = 8
	TitleKeySize = 16
)

func (i Info) IDHex() string {
	return hex.EncodeToString(i.ID[:])
}

// KeyHex is the encrypted title key as found in the ticket.
func (i Info) KeyHex() string {
	return hex.EncodeToString(i.Key[:])
}

func (i Info) VersionString() string {
	return fmt.Sprintf("%04d", i.Version)
}
