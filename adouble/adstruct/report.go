package adstruct

import (
	"fmt"

	"adouble-savior/adouble/adcheck"
	"adouble-savior/adouble/adentry"
	"adouble-savior/adouble/adname"
	"github.com/iancoleman/orderedmap"
	"github.com/opencontainers/go-digest"
	"github.com/samber/lo"
)

// ToOrderedMap renders the header as an ordered map ready for JSON encoding.
// Entries appear in table order; inline entries carry a digest of their bytes
// and name entries their decoded text.
func ToOrderedMap(s Struct) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("magic", fmt.Sprintf("0x%08x", s.header.Magic))
	lhm.Set("version", fmt.Sprintf("0x%08x", s.header.Version))
	lhm.Set("num_entries", s.header.EntryCount)
	lhm.Set("buffer_length", s.bounds.BufferLength)
	lhm.Set("file_size", s.bounds.FileSize)

	entries := lo.Map(
		s.IDs(),
		func(id adentry.ID, _ int) *orderedmap.OrderedMap {
			extent, _ := s.Extent(id)
			return entryToOrderedMap(s, id, extent)
		},
	)
	lhm.Set("entries", entries)

	return lhm
}

func entryToOrderedMap(s Struct, id adentry.ID, extent adcheck.Extent) *orderedmap.OrderedMap {
	lhm := orderedmap.New()
	lhm.Set("id", uint32(id))
	lhm.Set("name", id.String())
	lhm.Set("offset", extent.Offset)
	lhm.Set("length", extent.Length)
	lhm.Set("bound", extent.Bound)

	data, ok := s.Lookup(id)
	if !ok {
		return lhm
	}
	lhm.Set("digest", digest.FromBytes(data).String())
	if id == adentry.Name || id == adentry.ShortName {
		if name, err := adname.DecodeName(data); err == nil {
			lhm.Set("text", name)
		}
	}

	return lhm
}
