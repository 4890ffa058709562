package adentry

import (
	"fmt"

	"adouble-savior/adouble/aderr"
	"adouble-savior/adouble/adheader"
	"adouble-savior/adouble/bbytes"
	"adouble-savior/ds"
	"github.com/pkg/errors"
)

func DecodeEntry(reader *bbytes.Reader) (*Entry, error) {
	readUint32 := bbytes.CreateUint32ReadFunction(reader)
	instructions := []bbytes.Instruction{
		{Key: "id", ReadFunction: readUint32},
		{Key: "offset", ReadFunction: readUint32},
		{Key: "length", ReadFunction: readUint32},
	}
	entry, err := bbytes.ExecuteInstructions[Entry](instructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeEntry error")
		return nil, err
	}

	return entry, nil
}

// DecodeBlock reads the header.EntryCount records that follow the preamble.
// The entries are returned in table order and are not validated.
func DecodeBlock(reader *bbytes.Reader, header adheader.Header) ([]Entry, error) {
	numEntries := int(header.EntryCount)
	if reader.Len() < CalculateBlockSize(numEntries) {
		msg := fmt.Sprintf(
			"entry table needs %d bytes, %d left",
			CalculateBlockSize(numEntries), reader.Len(),
		)
		return nil, aderr.New(aderr.KindTruncated, msg)
	}

	entries := make([]Entry, 0, numEntries)
	for i := 0; i < numEntries; i++ {
		entry, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrapf(err, "adentry.DecodeBlock error at entry %d", i)
			return nil, err
		}
		if entry == nil {
			return nil, ds.ErrUnreachableCode{Caller: "adentry.DecodeBlock", Detail: "nil entry"}
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

func CalculateBlockSize(numEntries int) int {
	return numEntries * DefaultEntrySize
}
