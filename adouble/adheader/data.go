// Package adheader decodes the fixed preamble of an AppleDouble header.
package adheader

type (
	Header struct {
		Magic      uint32 `json:"magic"`
		Version    uint32 `json:"version"`
		EntryCount uint16 `json:"entry_count"`
	}
)

const (
	Magic   = uint32(0x00051607)
	Version = uint32(0x00020000)

	// DefaultHeaderSize covers magic, version, 16 bytes of filler and the entry count.
	DefaultHeaderSize = 26
	FillerSize        = 16
	// MaxEntries bounds the entry table so a tiny buffer cannot demand unbounded work.
	MaxEntries = 20
)

// TableEnd is the first byte past the entry table of a header with numEntries entries.
func TableEnd(numEntries int, entrySize int) int {
	return DefaultHeaderSize + numEntries*entrySize
}
