// Package adouble stores the code to unpack AppleDouble headers, the sidecar
// files ("._name") that carry Macintosh metadata next to files on a share.
package adouble

import (
	"strings"

	"adouble-savior/adouble/adheader"
)

// SidecarPrefix marks AppleDouble files in a directory listing.
const SidecarPrefix = "._"

func IsAppleDoubleFile(bs []byte) bool {
	return adheader.IsValidMagic(bs)
}

func IsSidecarName(name string) bool {
	return strings.HasPrefix(name, SidecarPrefix) && len(name) > len(SidecarPrefix)
}
