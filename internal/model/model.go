// Package model defines the records stored by the service and the request
// payloads accepted for them.
package model

import (
	"github.com/google/uuid"

	"github.com/stacygol/bloglist/internal/errs"
)

// ParseID parses a record id. Anything that is not a UUID is reported as
// a malformed id.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewMalformedIDError()
	}
	return id, nil
}

// IDParam binds the :id path segment. Requests embedding it call parse
// from Validate and read the result through ID.
type IDParam struct {
	RawID string `param:"id" json:"-"`

	id uuid.UUID
}

func (p *IDParam) parse() error {
	id, err := ParseID(p.RawID)
	if err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *IDParam) ID() uuid.UUID {
	return p.id
}

// NoParams is the payload of routes that read nothing from the request.
type NoParams struct{}

func (NoParams) Validate() error {
	return nil
}
