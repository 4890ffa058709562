// Package adstruct builds a validated AppleDouble header and serves its entries.
package adstruct

import (
	"adouble-savior/adouble/adcheck"
	"adouble-savior/adouble/adentry"
	"adouble-savior/adouble/adheader"
	"adouble-savior/ds"
)

type (
	// Struct is a header that passed validation. It owns a private copy of the
	// header bytes and never changes after Parse returns it.
	Struct struct {
		buffer  []byte
		header  adheader.Header
		bounds  adcheck.Bounds
		extents *ds.LinkedHashMap[adentry.ID, adcheck.Extent]
	}
)
