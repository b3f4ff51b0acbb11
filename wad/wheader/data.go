package wheader

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

type (
	Header struct {
		HeaderSize uint32 `json:"header_size"`
		WADType    Tag    `json:"wad_type"`
		CertSize   uint32 `json:"cert_size"`
		Reserved   Tag    `json:"reserved"`
		TicketSize uint32 `json:"ticket_size"`
		TMDSize    uint32 `json:"tmd_size"`
		DataSize   uint32 `json:"data_size"`
		FooterSize uint32 `json:"footer_size"`
	}
	// Tag holds an undecoded header slot, byte for byte.
	Tag [TagSize]byte

	ErrInvalidFormat struct {
		Got []byte
	}
)

const (
	DefaultHeaderSize = 32
	MagicSize         = 6
	TagSize           = 4
)

// MagicNumberBytes is a header_size of 0x20 followed by the "Is" type tag.
var MagicNumberBytes = []byte{0x00, 0x00, 0x00, 0x20, 0x49, 0x73}

func (r ErrInvalidFormat) Error() string {
	return fmt.Sprintf(
		`invalid magic number: expected "% x", got "% x"`,
		MagicNumberBytes, r.Got,
	)
}

func IsValidMagicNumber(bs []byte) bool {
	if len(bs) < MagicSize {
		return false
	}
	return bytes.Equal(bs[:MagicSize], MagicNumberBytes)
}

// SegmentSizes returns the sizes of the five segments that follow the header,
// in file order.
func (h Header) SegmentSizes() [5]uint32 {
	return [5]uint32{
		h.CertSize,
		h.TicketSize,
		h.TMDSize,
		h.DataSize,
		h.FooterSize,
	}
}

// String renders the tag the way it sits in the file, e.g. 0x49730000.
func (t Tag) String() string {
	return "0x" + hex.EncodeToString(t[:])
}

// Text returns the printable prefix of the tag, e.g. "Is".
func (t Tag) Text() string {
	return string(bytes.TrimRight(t[:], "\x00"))
}

func (t Tag) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(t[:])), nil
}

func (t *Tag) UnmarshalText(text []byte) error {
	bs, err := hex.DecodeString(string(text))
	if err != nil {
		return errors.Wrapf(err, `Tag.UnmarshalText error decoding "%s"`, text)
	}
	if len(bs) != TagSize {
		return errors.Errorf(`Tag.UnmarshalText expected %d bytes, got %d`, TagSize, len(bs))
	}
	copy(t[:], bs)
	return nil
}
