package aderr

import (
	"fmt"

	"github.com/pkg/errors"
)

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s: entry %d (id %d)", msg, e.Index, e.Identifier)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, detail string) *Error {
	return &Error{
		Kind:   kind,
		Index:  -1,
		Detail: detail,
	}
}

func NewEntry(kind Kind, index int, identifier uint32, detail string) *Error {
	return &Error{
		Kind:       kind,
		Index:      index,
		Identifier: identifier,
		Detail:     detail,
	}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var adErr *Error
	if !errors.As(err, &adErr) {
		return "", false
	}
	return adErr.Kind, true
}
