// Package id issues request correlation identifiers.
package id

import "github.com/rs/xid"

func Generate() string {
	return xid.New().String()
}

func Valid(s string) bool {
	id, err := xid.FromString(s)
	if err != nil {
		return false
	}
	return !id.IsNil() && !id.IsZero()
}

// FromHeader keeps a well formed incoming request id,
// otherwise a new one is generated.
func FromHeader(v string) string {
	if Valid(v) {
		return v
	}
	return Generate()
}
