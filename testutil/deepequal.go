package testutil

import (
	"github.com/google/go-cmp/cmp"
)

// DeepEqual reports whether x and y are equal as go-cmp sees them; the optional argument
// receives a description of the differences. The values must not contain unexported fields.
func DeepEqual(x, y interface{}, trc ...*string) bool {
	if len(trc) > 1 {
		panic("testutil.DeepEqual: more than one optional argument")
	}

	s := cmp.Diff(x, y)
	if len(trc) == 1 && trc[0] != nil {
		*trc[0] = s
	}
	return s == ""
}
