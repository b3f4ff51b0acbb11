// Package report renders inspections as text, CSV lines and JSON records.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"wad-info/wad"
	"wad-info/wad/wheader"
	"wad-info/wad/wsegment"
)

const headerTemplate = "\nHeader size:\t\t%d bytes\n" +
	"WAD type:\t\t%s\n" +
	"Cert chain size:\t%d bytes\n" +
	"Reserved:\t\t%s\n" +
	"Ticket size:\t\t%d bytes\n" +
	"TMD size:\t\t%d bytes\n" +
	"Data size:\t\t%d bytes\n" +
	"Footer size:\t\t%d bytes\n\n"

// Header writes the file name followed by the eight header fields.
func Header(w io.Writer, inspection wad.Inspection) error {
	h := inspection.Header
	_, err := fmt.Fprintf(
		w, "%s\n"+headerTemplate,
		inspection.Path,
		h.HeaderSize,
		h.WADType,
		h.CertSize,
		h.Reserved,
		h.TicketSize,
		h.TMDSize,
		h.DataSize,
		h.FooterSize,
	)
	return err
}

func Segments(w io.Writer, inspection wad.Inspection) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Segment\tStart\tEnd\tLength\t")
	for _, kind := range wsegment.Kinds {
		r := inspection.Offsets.Get(kind)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t\n", kind, r.Start, r.End, r.Len())
	}
	return tw.Flush()
}

// Error writes the one-line failure report for a file.
func Error(w io.Writer, path string, err error) {
	var invalid wheader.ErrInvalidFormat
	if errors.As(err, &invalid) {
		fmt.Fprintf(w, "Error: invalid WAD file: %s\n", path)
		return
	}
	fmt.Fprintf(w, "Error: %s: %v\n", path, err)
}
