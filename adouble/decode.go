package adouble

import (
	"encoding/json"

	"adouble-savior/adouble/adentry"
	"adouble-savior/adouble/adname"
	"adouble-savior/adouble/adstruct"
	"github.com/pkg/errors"
)

// Parse validates a header buffer; see adstruct.Parse.
func Parse(bs []byte, fileSize uint64) (*adstruct.Struct, error) {
	return adstruct.Parse(bs, fileSize)
}

func Lookup(s *adstruct.Struct, id adentry.ID) ([]byte, bool) {
	return s.Lookup(id)
}

// Name returns the original file name stored in the header, if any.
func Name(s *adstruct.Struct) (string, bool, error) {
	bs, ok := s.Lookup(adentry.Name)
	if !ok {
		return "", false, nil
	}
	name, err := adname.DecodeName(bs)
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

// DecodeAppleDouble parses bs and renders it as indented JSON. With debug set the
// validation bounds are included.
func DecodeAppleDouble(bs []byte, fileSize uint64, debug bool) ([]byte, error) {
	s, err := adstruct.Parse(bs, fileSize)
	if err != nil {
		return nil, err
	}
	return Report(s, debug)
}

// Report renders an already parsed header the way DecodeAppleDouble does.
func Report(s *adstruct.Struct, debug bool) ([]byte, error) {
	decodedMap := adstruct.ToOrderedMap(*s)
	if debug {
		decodedMap.Set("bounds", s.Bounds())
	}
	decodedBytes, err := json.MarshalIndent(decodedMap, "", "  ")
	if err != nil {
		err := errors.Wrap(err, "Report error")
		return nil, err
	}
	return decodedBytes, nil
}
