package wtitle

import (
	"github.com/pkg/errors"
	"wad-info/wad/lbytes"
	"wad-info/wad/wsegment"
)

func Read(reader *lbytes.Reader, offsets wsegment.Offsets) (*Info, error) {
	tmdStart := offsets.Get(wsegment.TMD).Start
	ticketStart := offsets.Get(wsegment.Ticket).Start
	info := Info{}

	id, err := reader.ReadBytesAt(tmdStart+TitleIDOffset, TitleIDSize)
	if err != nil {
		return nil, errors.Wrap(err, "wtitle.Read error reading title id")
	}
	copy(info.ID[:], id)

	key, err := reader.ReadBytesAt(ticketStart+TitleKeyOffset, TitleKeySize)
	if err != nil {
		return nil, errors.Wrap(err, "wtitle.Read error reading title key")
	}
	copy(info.Key[:], key)

	info.Version, err = reader.ReadUint16At(tmdStart + TitleVersionOffset)
	if err != nil {
		return nil, errors.Wrap(err, "wtitle.Read error reading title version")
	}

	return &info, nil
}
