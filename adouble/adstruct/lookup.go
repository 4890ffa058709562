package adstruct

import (
	"bytes"
	"io"

	"adouble-savior/adouble/adcheck"
	"adouble-savior/adouble/adentry"
	"adouble-savior/adouble/adheader"
)

func (s *Struct) Header() adheader.Header {
	return s.header
}

func (s *Struct) Bounds() adcheck.Bounds {
	return s.bounds
}

// IDs lists the identifiers present, in the order they first appear in the table.
func (s *Struct) IDs() []adentry.ID {
	return s.extents.Keys()
}

func (s *Struct) Extent(id adentry.ID) (adcheck.Extent, bool) {
	return s.extents.Get(id)
}

// Lookup returns the bytes of the entry id held in the header buffer. It reports
// false for absent and empty entries, and for the resource fork, whose data lies
// past the buffer; use SectionReader for that one.
// The returned slice aliases the header and must not be modified.
func (s *Struct) Lookup(id adentry.ID) ([]byte, bool) {
	extent, ok := s.extents.Get(id)
	if !ok || extent.IsEmpty() || extent.Bound != adcheck.BoundBuffer {
		return nil, false
	}
	end := extent.End()
	return s.buffer[extent.Offset:end:end], true
}

// SectionReader opens the data of entry id. Entries held in the buffer are read
// from it; file-bound entries are read from file, which must be the sidecar the
// header came from. It reports false for absent and empty entries, or when a
// file-bound entry is requested with a nil file.
func (s *Struct) SectionReader(id adentry.ID, file io.ReaderAt) (*io.SectionReader, bool) {
	extent, ok := s.extents.Get(id)
	if !ok || extent.IsEmpty() {
		return nil, false
	}
	switch extent.Bound {
	case adcheck.BoundBuffer:
		return io.NewSectionReader(bytes.NewReader(s.buffer), int64(extent.Offset), int64(extent.Length)), true
	case adcheck.BoundFile:
		if file == nil {
			return nil, false
		}
		return io.NewSectionReader(file, int64(extent.Offset), int64(extent.Length)), true
	}
	return nil, false
}
