package adheader

import (
	"fmt"

	"adouble-savior/adouble/aderr"
	"adouble-savior/adouble/bbytes"
	"github.com/pkg/errors"
)

func IsValidMagic(bs []byte) bool {
	if len(bs) < 4 {
		return false
	}
	reader := bbytes.NewBytesReader(bs[:4])
	magic, err := reader.ReadUint32()
	return err == nil && magic == Magic
}

func createConstantReadFunction(reader *bbytes.Reader, expected uint32, kind aderr.Kind) bbytes.ReadFunction {
	return func() (any, error) {
		value, err := reader.ReadUint32()
		if err != nil {
			return nil, err
		}
		if value != expected {
			msg := fmt.Sprintf(`expected "0x%08x", got "0x%08x"`, expected, value)
			return nil, aderr.New(kind, msg)
		}
		return value, nil
	}
}

// Decode reads the preamble from the start of reader. On success the reader is
// positioned at the first entry record.
func Decode(reader *bbytes.Reader) (*Header, error) {
	if reader.Len() < DefaultHeaderSize {
		msg := fmt.Sprintf("buffer holds %d bytes, preamble needs %d", reader.Len(), DefaultHeaderSize)
		return nil, aderr.New(aderr.KindTruncated, msg)
	}

	headerInstructions := []bbytes.Instruction{
		{Key: "magic", ReadFunction: createConstantReadFunction(reader, Magic, aderr.KindBadMagic)},
		{Key: "version", ReadFunction: createConstantReadFunction(reader, Version, aderr.KindBadVersion)},
		{Key: "filler", ReadFunction: bbytes.CreateSkipFunction(reader, FillerSize)},
		{Key: "entry_count", ReadFunction: bbytes.CreateUint16ReadFunction(reader)},
	}

	header, err := bbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		err := errors.Wrap(err, "adheader.Decode error")
		return nil, err
	}

	if header.EntryCount > MaxEntries {
		msg := fmt.Sprintf("%d entries, at most %d allowed", header.EntryCount, MaxEntries)
		return nil, aderr.New(aderr.KindTooManyEntries, msg)
	}

	return header, nil
}
