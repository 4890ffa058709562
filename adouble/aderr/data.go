// Package aderr holds the error kinds produced while unpacking an AppleDouble header.
//
// Every failure is terminal: a header that produced an error must not be used at all.
package aderr

type (
	Kind string

	// Error describes why a header was rejected. Index and Identifier are only
	// meaningful for entry-level kinds; Index is -1 otherwise.
	Error struct {
		Kind       Kind
		Index      int
		Identifier uint32
		Detail     string
	}
)

const (
	KindBadMagic           = Kind("bad_magic")
	KindBadVersion         = Kind("bad_version")
	KindTruncated          = Kind("truncated")
	KindTooManyEntries     = Kind("too_many_entries")
	KindEntryOverflow      = Kind("entry_overflow")
	KindEntryOutOfBounds   = Kind("entry_out_of_bounds")
	KindInvalidEntryLength = Kind("invalid_entry_length")
)

// Sentinels for errors.Is; they match any *Error of the same Kind.
var (
	ErrBadMagic           = &Error{Kind: KindBadMagic, Index: -1}
	ErrBadVersion         = &Error{Kind: KindBadVersion, Index: -1}
	ErrTruncated          = &Error{Kind: KindTruncated, Index: -1}
	ErrTooManyEntries     = &Error{Kind: KindTooManyEntries, Index: -1}
	ErrEntryOverflow      = &Error{Kind: KindEntryOverflow, Index: -1}
	ErrEntryOutOfBounds   = &Error{Kind: KindEntryOutOfBounds, Index: -1}
	ErrInvalidEntryLength = &Error{Kind: KindInvalidEntryLength, Index: -1}
)
