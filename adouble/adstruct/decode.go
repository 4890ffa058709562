package adstruct

import (
	"adouble-savior/adouble/adcheck"
	"adouble-savior/adouble/adentry"
	"adouble-savior/adouble/adheader"
	"adouble-savior/adouble/bbytes"
)

// Parse validates bs as an AppleDouble header. fileSize is the size of the whole
// sidecar file, which bounds the resource fork; every other entry must fit in bs.
// Either every entry is valid and a Struct is returned, or nothing is.
func Parse(bs []byte, fileSize uint64) (*Struct, error) {
	buffer := make([]byte, len(bs))
	copy(buffer, bs)
	reader := bbytes.NewBytesReader(buffer)

	header, err := adheader.Decode(reader)
	if err != nil {
		return nil, err
	}

	entries, err := adentry.DecodeBlock(reader, *header)
	if err != nil {
		return nil, err
	}

	bounds := adcheck.Bounds{
		BufferLength: uint64(len(buffer)),
		FileSize:     fileSize,
		TableEnd:     uint64(adheader.TableEnd(len(entries), adentry.DefaultEntrySize)),
	}
	extents, err := adcheck.CheckBlock(entries, bounds)
	if err != nil {
		return nil, err
	}

	return &Struct{
		buffer:  buffer,
		header:  *header,
		bounds:  bounds,
		extents: extents,
	}, nil
}
