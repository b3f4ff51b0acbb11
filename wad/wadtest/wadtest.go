// Package wadtest builds synthetic WAD images for tests.
package wadtest

import (
	"encoding/binary"

	"wad-info/ds"
)

type (
	Fields struct {
		HeaderSize uint32
		WADType    [4]byte
		CertSize   uint32
		Reserved   [4]byte
		TicketSize uint32
		TMDSize    uint32
		DataSize   uint32
		FooterSize uint32
	}
	Title struct {
		ID      [8]byte
		Key     [16]byte
		Version uint16
	}
)

const (
	titleIDOffset      = 396
	titleKeyOffset     = 447
	titleVersionOffset = 476
)

var TypeIs = [4]byte{'I', 's', 0, 0}

// DefaultFields describes a file whose ticket and title metadata are large
// enough to hold the title fields.
func DefaultFields() Fields {
	return Fields{
		HeaderSize: 32,
		WADType:    TypeIs,
		CertSize:   0xA00,
		TicketSize: 0x2A4,
		TMDSize:    0x208,
		DataSize:   0x100,
		FooterSize: 0x40,
	}
}

func DefaultTitle() Title {
	return Title{
		ID:      [8]byte{0x00, 0x01, 0x00, 0x01, 'H', 'A', 'D', 'E'},
		Key:     [16]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
		Version: 2,
	}
}

func HeaderBytes(f Fields) []byte {
	bs := make([]byte, 0, 32)
	bs = binary.BigEndian.AppendUint32(bs, f.HeaderSize)
	bs = append(bs, f.WADType[:]...)
	bs = binary.BigEndian.AppendUint32(bs, f.CertSize)
	bs = append(bs, f.Reserved[:]...)
	bs = binary.BigEndian.AppendUint32(bs, f.TicketSize)
	bs = binary.BigEndian.AppendUint32(bs, f.TMDSize)
	bs = binary.BigEndian.AppendUint32(bs, f.DataSize)
	bs = binary.BigEndian.AppendUint32(bs, f.FooterSize)
	return bs
}

// Build lays out a full image: header, then each segment on a 64-byte
// boundary, ending at the last byte of the footer. Title fields are written
// only where their segment is large enough to hold them.
func Build(f Fields, title Title) []byte {
	sizes := []uint32{f.CertSize, f.TicketSize, f.TMDSize, f.DataSize, f.FooterSize}
	starts := make([]int, 0, len(sizes))
	cursor := int(f.HeaderSize)
	for _, size := range sizes {
		start := ds.AlignUp(cursor, 64)
		starts = append(starts, start)
		cursor = start + int(size)
	}

	bs := make([]byte, cursor)
	copy(bs, HeaderBytes(f))

	ticketStart, tmdStart := starts[1], starts[2]
	if int(f.TicketSize) >= titleKeyOffset+len(title.Key) {
		copy(bs[ticketStart+titleKeyOffset:], title.Key[:])
	}
	if int(f.TMDSize) >= titleIDOffset+len(title.ID) {
		copy(bs[tmdStart+titleIDOffset:], title.ID[:])
	}
	if int(f.TMDSize) >= titleVersionOffset+2 {
		binary.BigEndian.PutUint16(bs[tmdStart+titleVersionOffset:], title.Version)
	}
	return bs
}

// BuildDefault is Build(DefaultFields(), DefaultTitle()).
func BuildDefault() []byte {
	return Build(DefaultFields(), DefaultTitle())
}
