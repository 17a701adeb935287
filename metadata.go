package safehold

import "github.com/safehold/safehold/errors"

// Metadata is stored as the first field of every persisted model. Schema
// tracks the version of the model layout.
type Metadata struct {
	Schema uint32 `json:"schema"`
}

// Validate returns an error if the metadata is missing or declares an
// unsupported schema.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrModel, "missing metadata")
	}
	if m.Schema == 0 {
		return errors.Wrap(errors.ErrModel, "schema version is required")
	}
	return nil
}

// Copy returns a copy of this object that does not share memory.
func (m *Metadata) Copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := *m
	return &cpy
}
