package wheader

import (
	"github.com/pkg/errors"
	"wad-info/wad/lbytes"
)

func createTagReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		bs, err := reader.ReadBytes(TagSize)
		if err != nil {
			return nil, err
		}
		tag := Tag{}
		copy(tag[:], bs)
		return tag, nil
	}
}

func checkMagicNumber(reader *lbytes.Reader) error {
	magicNumberBytes, err := reader.ReadBytes(MagicSize)
	if err != nil {
		return errors.Wrap(err, "checkMagicNumber error")
	}
	if !IsValidMagicNumber(magicNumberBytes) {
		return ErrInvalidFormat{Got: magicNumberBytes}
	}
	return nil
}

// Decode validates the magic number and reads the fixed header from the start
// of the stream. On success the cursor is left right after the header.
func Decode(reader *lbytes.Reader) (*Header, error) {
	if err := reader.Rewind(); err != nil {
		return nil, errors.Wrap(err, "wheader.Decode error rewinding")
	}
	if err := checkMagicNumber(reader); err != nil {
		return nil, err
	}
	if err := reader.Rewind(); err != nil {
		return nil, errors.Wrap(err, "wheader.Decode error rewinding")
	}

	readTag := createTagReadFunction(reader)
	readUint32 := lbytes.CreateUint32ReadFunction(reader)

	headerInstructions := []lbytes.Instruction{
		{Key: "header_size", ReadFunction: readUint32},
		{Key: "wad_type", ReadFunction: readTag},
		{Key: "cert_size", ReadFunction: readUint32},
		{Key: "reserved", ReadFunction: readTag},
		{Key: "ticket_size", ReadFunction: readUint32},
		{Key: "tmd_size", ReadFunction: readUint32},
		{Key: "data_size", ReadFunction: readUint32},
		{Key: "footer_size", ReadFunction: readUint32},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "wheader.Decode error")
	}

	return header, nil
}
