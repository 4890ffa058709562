// Package adname turns the Name and ShortName entries into UTF-8 strings.
package adname

import (
	"bytes"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DecodeName decodes a Mac OS Roman file name. Trailing NUL padding is dropped.
func DecodeName(bs []byte) (string, error) {
	bs = bytes.TrimRight(bs, "\x00")
	decoded, _, err := transform.Bytes(charmap.Macintosh.NewDecoder(), bs)
	if err != nil {
		err := errors.Wrap(err, "adname.DecodeName error")
		return "", err
	}
	return string(decoded), nil
}
