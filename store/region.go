package store

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Region is a sales region such as "eu-west". It is written as text and can
// be used as a JSON object key.
type Region struct {
	Area string
	Zone string
}

func (r Region) MarshalText() ([]byte, error) {
	return []byte(r.Area + "-" + r.Zone), nil
}

func (r *Region) UnmarshalText(text []byte) error {
	area, zone, ok := strings.Cut(string(text), "-")
	if !ok || area == "" || zone == "" {
		return errors.Newf("invalid region %q", text)
	}

	r.Area, r.Zone = area, zone
	return nil
}
