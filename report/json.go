package report

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"wad-info/wad"
	"wad-info/wad/wsegment"
)

// ToOrderedMap lays the inspection out in file order: header fields, then
// segments, then title fields.
func ToOrderedMap(inspection wad.Inspection) *orderedmap.OrderedMap {
	h := inspection.Header
	header := orderedmap.New()
	header.Set("header_size", h.HeaderSize)
	header.Set("wad_type", h.WADType.String())
	header.Set("cert_size", h.CertSize)
	header.Set("reserved", h.Reserved.String())
	header.Set("ticket_size", h.TicketSize)
	header.Set("tmd_size", h.TMDSize)
	header.Set("data_size", h.DataSize)
	header.Set("footer_size", h.FooterSize)

	segments := orderedmap.New()
	for _, kind := range wsegment.Kinds {
		r := inspection.Offsets.Get(kind)
		segment := orderedmap.New()
		segment.Set("start", r.Start)
		segment.Set("end", r.End)
		segments.Set(kind.String(), segment)
	}

	lhm := orderedmap.New()
	lhm.Set("path", inspection.Path)
	lhm.Set("header", header)
	lhm.Set("segments", segments)
	if title := inspection.Title; title != nil {
		titleMap := orderedmap.New()
		titleMap.Set("id", title.IDHex())
		titleMap.Set("version", title.Version)
		titleMap.Set("key", title.KeyHex())
		lhm.Set("title", titleMap)
	}
	return lhm
}

// JSON writes the inspection as a single line of JSON.
func JSON(w io.Writer, inspection wad.Inspection) error {
	bs, err := json.Marshal(ToOrderedMap(inspection))
	if err != nil {
		return errors.Wrap(err, "report.JSON error marshalling")
	}
	bs = append(bs, '\n')
	_, err = w.Write(bs)
	return err
}
