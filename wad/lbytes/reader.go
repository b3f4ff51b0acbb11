package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func NewReader(rs io.ReadSeeker) *Reader {
	return &Reader{
		ReadSeeker: rs,
	}
}

func NewBytesReader(bs []byte) *Reader {
	return NewReader(bytes.NewReader(bs))
}

// Tell returns the current position of the read cursor.
func (b *Reader) Tell() (int64, error) {
	return b.Seek(0, io.SeekCurrent)
}

func (b *Reader) Rewind() error {
	_, err := b.Seek(0, io.SeekStart)
	return err
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	if n == 0 {
		return bs, nil
	}
	offset, err := b.Tell()
	if err != nil {
		return nil, errors.Wrap(err, "ReadBytes error locating cursor")
	}
	read, err := io.ReadFull(b.ReadSeeker, bs)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, ErrTruncatedInput{
			Offset: offset,
			Want:   n,
			Got:    read,
		}
	}
	if err != nil {
		return nil, err
	}
	return bs, nil
}

// ReadBytesAt moves the cursor to offset and reads n bytes from there.
func (b *Reader) ReadBytesAt(offset int64, n int) ([]byte, error) {
	if _, err := b.Seek(offset, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "ReadBytesAt error seeking to %d", offset)
	}
	return b.ReadBytes(n)
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(bs), nil
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(bs), nil
}

func (b *Reader) ReadUint16At(offset int64) (uint16, error) {
	bs, err := b.ReadBytesAt(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(bs), nil
}
