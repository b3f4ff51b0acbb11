package wad

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"wad-info/wad/lbytes"
	"wad-info/wad/wheader"
	"wad-info/wad/wsegment"
	"wad-info/wad/wtitle"
)

// InspectHeader decodes the header and derives the segment offsets.
func InspectHeader(rs io.ReadSeeker) (*Inspection, error) {
	reader := lbytes.NewReader(rs)
	header, err := wheader.Decode(reader)
	if err != nil {
		return nil, err
	}
	return &Inspection{
		Header:  *header,
		Offsets: wsegment.FromHeader(*header),
	}, nil
}

// Inspect is InspectHeader followed by the title field reads.
func Inspect(rs io.ReadSeeker) (*Inspection, error) {
	inspection, err := InspectHeader(rs)
	if err != nil {
		return nil, err
	}
	title, err := wtitle.Read(lbytes.NewReader(rs), inspection.Offsets)
	if err != nil {
		return nil, err
	}
	inspection.Title = title
	return inspection, nil
}

func InspectFile(path string, withTitle bool) (*Inspection, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "InspectFile error opening file")
	}
	defer file.Close()

	inspect := InspectHeader
	if withTitle {
		inspect = Inspect
	}
	inspection, err := inspect(file)
	if err != nil {
		return nil, err
	}
	inspection.Path = path
	return inspection, nil
}
