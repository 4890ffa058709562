package bbytes

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadUint32(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			0x00, 0x05, 0x16, 0x07,
			0xff, 0xff, 0xff, 0x00,
		},
	)

	resultInt1, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x00051607), resultInt1)

	resultInt2, err := reader.ReadUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xffffff00), resultInt2)

	assert.Equal(t, int64(8), reader.Offset())
}

func TestReader_ReadUint16(t *testing.T) {
	reader := NewBytesReader([]byte{0x00, 0x02, 0x01})

	count, err := reader.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(2), count)

	_, err = reader.ReadUint16()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReader_ReadBytes(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3})

	bs, err := reader.ReadBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, bs)

	// reading nothing at the end is fine
	bs, err = reader.ReadBytes(0)
	require.NoError(t, err)
	assert.Empty(t, bs)

	_, err = reader.ReadBytes(1)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestExecuteInstructions(t *testing.T) {
	type record struct {
		ID     uint32 `json:"id"`
		Count  uint16 `json:"count"`
		Filler []byte `json:"filler"`
	}
	reader := NewBytesReader(
		[]byte{
			0x00, 0x00, 0x00, 0x09,
			0xaa, 0xbb,
			0x00, 0x02,
			0x01, 0x02,
		},
	)
	instructions := []Instruction{
		{"id", CreateUint32ReadFunction(reader)},
		{"skipped", CreateSkipFunction(reader, 2)},
		{"count", CreateUint16ReadFunction(reader)},
		{"filler", CreateNBytesReadFunction(reader, 2)},
	}

	result, err := ExecuteInstructions[record](instructions)
	require.NoError(t, err)
	assert.Equal(t, record{ID: 9, Count: 2, Filler: []byte{1, 2}}, *result)
}

func TestExecuteInstructions_ShortBuffer(t *testing.T) {
	type record struct {
		ID uint32 `json:"id"`
	}
	reader := NewBytesReader([]byte{0x00, 0x00})

	result, err := ExecuteInstructions[record](
		[]Instruction{{"id", CreateUint32ReadFunction(reader)}},
	)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Contains(t, err.Error(), `reading key "id"`)
}
