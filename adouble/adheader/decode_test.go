package adheader

import (
	"testing"

	"adouble-savior/adouble/aderr"
	"adouble-savior/adouble/bbytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPreamble(magic []byte, version []byte, count []byte) []byte {
	bs := make([]byte, 0, DefaultHeaderSize)
	bs = append(bs, magic...)
	bs = append(bs, version...)
	bs = append(bs, make([]byte, FillerSize)...)
	bs = append(bs, count...)
	return bs
}

var (
	magicBytes   = []byte{0x00, 0x05, 0x16, 0x07}
	versionBytes = []byte{0x00, 0x02, 0x00, 0x00}
)

func TestDecode(t *testing.T) {
	bs := createPreamble(magicBytes, versionBytes, []byte{0x00, 0x02})
	reader := bbytes.NewBytesReader(bs)

	header, err := Decode(reader)
	require.NoError(t, err)
	assert.Equal(t, Header{Magic: Magic, Version: Version, EntryCount: 2}, *header)
	assert.Equal(t, int64(DefaultHeaderSize), reader.Offset())
}

func TestDecode_Rejected(t *testing.T) {
	tests := map[string]struct {
		in   []byte
		kind error
	}{
		"empty buffer": {
			in:   []byte{},
			kind: aderr.ErrTruncated,
		},
		"one byte short": {
			in:   createPreamble(magicBytes, versionBytes, []byte{0x00}),
			kind: aderr.ErrTruncated,
		},
		"AppleSingle magic": {
			in:   createPreamble([]byte{0x00, 0x05, 0x16, 0x00}, versionBytes, []byte{0x00, 0x00}),
			kind: aderr.ErrBadMagic,
		},
		"version 1": {
			in:   createPreamble(magicBytes, []byte{0x00, 0x01, 0x00, 0x00}, []byte{0x00, 0x00}),
			kind: aderr.ErrBadVersion,
		},
		"too many entries": {
			in:   createPreamble(magicBytes, versionBytes, []byte{0x00, MaxEntries + 1}),
			kind: aderr.ErrTooManyEntries,
		},
		"huge entry count": {
			in:   createPreamble(magicBytes, versionBytes, []byte{0xff, 0xff}),
			kind: aderr.ErrTooManyEntries,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			header, err := Decode(bbytes.NewBytesReader(test.in))
			assert.Nil(t, header)
			assert.True(t, errors.Is(err, test.kind), "got %v", err)
		})
	}
}

func TestDecode_BadMagicBeforeBadVersion(t *testing.T) {
	bs := createPreamble([]byte{0xde, 0xad, 0xbe, 0xef}, []byte{0xde, 0xad, 0xbe, 0xef}, []byte{0x00, 0x00})

	_, err := Decode(bbytes.NewBytesReader(bs))
	kind, ok := aderr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, aderr.KindBadMagic, kind)
}

func TestIsValidMagic(t *testing.T) {
	assert.True(t, IsValidMagic(magicBytes))
	assert.False(t, IsValidMagic([]byte{0x00, 0x05, 0x16}))
	assert.False(t, IsValidMagic([]byte{0x01, 0xB1, 0x00, 0x00}))
}

func TestTableEnd(t *testing.T) {
	assert.Equal(t, 0x32, TableEnd(2, 12))
	assert.Equal(t, DefaultHeaderSize, TableEnd(0, 12))
}
