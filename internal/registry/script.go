// Package registry holds the in-memory script registry: an ordered mapping
// from alias to Script with alias uniqueness, lookup, rename and tag filtered
// listing.
package registry

import (
	"errors"

	"github.com/msto63/pier/foundation/utils/slicex"
	mdwstringx "github.com/msto63/pier/foundation/utils/stringx"
)

// Script is a single registry entry
type Script struct {
	Alias       string
	Command     string
	Description string
	// Reference points at another alias or an external resource. It is
	// carried as metadata only.
	Reference string
	Tags      []string
}

// Validate checks the required fields
func (s Script) Validate() error {
	if mdwstringx.IsBlank(s.Alias) {
		return errors.New("alias cannot be empty")
	}
	if mdwstringx.IsBlank(s.Command) {
		return errors.New("command cannot be empty")
	}
	return nil
}

// HasTag reports whether the script carries tag
func (s Script) HasTag(tag string) bool {
	return slicex.Contains(s.Tags, tag)
}

// Clone returns a copy that shares no slices with s
func (s Script) Clone() Script {
	s.Tags = slicex.Clone(s.Tags)
	return s
}
