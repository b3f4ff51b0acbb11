package report

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"wad-info/wad"
)

var ErrNoTitle = errors.New("inspection has no title fields")

// CSV writes one record: title id, zero-padded version, encrypted title key
// and the quoted file name.
func CSV(w io.Writer, inspection wad.Inspection) error {
	title := inspection.Title
	if title == nil {
		return errors.Wrapf(ErrNoTitle, `report.CSV error for "%s"`, inspection.Path)
	}
	_, err := fmt.Fprintf(
		w, "%s,%s,%s,\"%s\"\n",
		title.IDHex(),
		title.VersionString(),
		title.KeyHex(),
		inspection.Path,
	)
	return err
}
