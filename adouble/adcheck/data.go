// Package adcheck validates decoded AppleDouble entries against the bounds they
// must stay within.
//
// Every entry's data lives in one of two regions. Most identifiers describe data
// embedded in the header buffer itself, so offset+length must fit the buffer.
// The resource fork is appended to the sidecar file after the header and may be
// far larger than the buffer that was read, so it is checked against the total
// file size instead. An entry that passes carries the bound it was checked
// against in its Extent.
package adcheck

import (
	"adouble-savior/adouble/adentry"
)

type (
	BoundKind string

	Bounds struct {
		// BufferLength is the number of header bytes held in memory.
		BufferLength uint64 `json:"buffer_length"`
		// FileSize is the size of the whole sidecar file as reported by its store.
		FileSize uint64 `json:"file_size"`
		// TableEnd is the first byte past the entry table.
		TableEnd uint64 `json:"table_end"`
	}

	// Extent is a validated (offset, length) pair.
	Extent struct {
		Offset uint32    `json:"offset"`
		Length uint32    `json:"length"`
		Bound  BoundKind `json:"bound"`
	}
)

const (
	BoundBuffer = BoundKind("buffer")
	BoundFile   = BoundKind("file")
)

// FixedLengthByID lists identifiers whose payload has a fixed size. Such an
// entry is either exactly that long or empty.
var FixedLengthByID = map[adentry.ID]uint32{
	adentry.FileDatesInfo: 16,
	adentry.FinderInfo:    32,
}

func (e Extent) End() uint64 {
	return uint64(e.Offset) + uint64(e.Length)
}

func (e Extent) IsEmpty() bool {
	return e.Length == 0
}
