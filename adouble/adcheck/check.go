package adcheck

import (
	"fmt"

	"adouble-savior/adouble/aderr"
	"adouble-savior/adouble/adentry"
	"adouble-savior/ds"
)

func GoverningBound(id adentry.ID, bounds Bounds) (uint64, BoundKind) {
	if id == adentry.ResourceFork {
		return bounds.FileSize, BoundFile
	}
	return bounds.BufferLength, BoundBuffer
}

// CheckFixedLength reports whether length is acceptable for id. Identifiers
// without a fixed size accept any length.
func CheckFixedLength(id adentry.ID, length uint32) bool {
	fixedLength, ok := FixedLengthByID[id]
	if !ok {
		return true
	}
	return length == 0 || length == fixedLength
}

// CheckEntry validates the entry at position index of the table. The checks run
// in a fixed order (overflow, governing bound, table overlap, fixed length) and
// the first failing one is reported.
func CheckEntry(index int, entry adentry.Entry, bounds Bounds) (*Extent, error) {
	id := uint32(entry.ID)

	end, ok := ds.CheckedAdd(entry.Offset, entry.Length)
	if !ok {
		msg := fmt.Sprintf("offset %#x + length %#x overflows 32 bits", entry.Offset, entry.Length)
		return nil, aderr.NewEntry(aderr.KindEntryOverflow, index, id, msg)
	}

	bound, boundKind := GoverningBound(entry.ID, bounds)
	// offset == bound is only possible here for an empty entry
	if uint64(end) > bound {
		msg := fmt.Sprintf("end %#x exceeds %s bound %#x", end, boundKind, bound)
		return nil, aderr.NewEntry(aderr.KindEntryOutOfBounds, index, id, msg)
	}

	if entry.Length > 0 && uint64(entry.Offset) < bounds.TableEnd {
		msg := fmt.Sprintf("offset %#x points into the entry table ending at %#x", entry.Offset, bounds.TableEnd)
		return nil, aderr.NewEntry(aderr.KindEntryOutOfBounds, index, id, msg)
	}

	if !CheckFixedLength(entry.ID, entry.Length) {
		msg := fmt.Sprintf(
			"%s needs length 0 or %d, got %d",
			entry.ID, FixedLengthByID[entry.ID], entry.Length,
		)
		return nil, aderr.NewEntry(aderr.KindInvalidEntryLength, index, id, msg)
	}

	return &Extent{
		Offset: entry.Offset,
		Length: entry.Length,
		Bound:  boundKind,
	}, nil
}

// CheckBlock validates every entry and returns the extents keyed by identifier
// in table order. A single bad entry rejects the whole block. When an identifier
// repeats, the later entry replaces the earlier one.
func CheckBlock(entries []adentry.Entry, bounds Bounds) (*ds.LinkedHashMap[adentry.ID, Extent], error) {
	if bounds.TableEnd > bounds.BufferLength {
		detail := fmt.Sprintf("bounds %s", ds.DumpJSON(bounds))
		return nil, ds.ErrUnreachableCode{Caller: "adcheck.CheckBlock", Detail: detail}
	}

	extents := ds.NewLinkedHashMap[adentry.ID, Extent]()
	for i, entry := range entries {
		extent, err := CheckEntry(i, entry, bounds)
		if err != nil {
			return nil, err
		}
		extents.Put(entry.ID, *extent)
	}

	return extents, nil
}
