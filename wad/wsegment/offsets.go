package wsegment

import (
	"github.com/samber/lo"
	"wad-info/ds"
	"wad-info/wad/wheader"
)

// ComputeOffsets walks the segments in file order starting right after the
// header. Every segment starts on the next 64-byte boundary at or after the
// end of the previous one.
func ComputeOffsets(headerSize, certSize, ticketSize, tmdSize, dataSize, footerSize int64) Offsets {
	sizes := []int64{certSize, ticketSize, tmdSize, dataSize, footerSize}
	ranges := lo.Reduce(
		sizes,
		func(ranges []Range, size int64, _ int) []Range {
			cursor := headerSize
			if last, err := lo.Last(ranges); err == nil {
				cursor = last.End + 1
			}
			start := ds.AlignUp(cursor, Alignment)
			return append(ranges, Range{Start: start, End: start + size - 1})
		},
		make([]Range, 0, NumSegments),
	)

	offsets := Offsets{}
	copy(offsets[:], ranges)
	return offsets
}

func FromHeader(header wheader.Header) Offsets {
	sizes := header.SegmentSizes()
	return ComputeOffsets(
		int64(header.HeaderSize),
		int64(sizes[Cert]),
		int64(sizes[Ticket]),
		int64(sizes[TMD]),
		int64(sizes[Data]),
		int64(sizes[Footer]),
	)
}
