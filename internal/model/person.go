package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stacygol/bloglist/internal/validation"
)

// Person is a phonebook entry.
type Person struct {
	ID     uuid.UUID `json:"id" db:"id"`
	Name   string    `json:"name" db:"name"`
	Number string    `json:"number" db:"number"`
}

type CreatePersonRequest struct {
	Name   string `json:"name" validate:"required,min=3"`
	Number string `json:"number" validate:"required,phonenumber"`
}

func (r *CreatePersonRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreatePersonRequest) Person() *Person {
	return &Person{Name: r.Name, Number: r.Number}
}

type UpdatePersonRequest struct {
	IDParam
	Name   string `json:"name" validate:"required,min=3"`
	Number string `json:"number" validate:"required,phonenumber"`
}

func (r *UpdatePersonRequest) Validate() error {
	if err := r.parse(); err != nil {
		return err
	}
	return validation.Struct(r)
}

func (r *UpdatePersonRequest) Person() *Person {
	return &Person{ID: r.ID(), Name: r.Name, Number: r.Number}
}

type GetPersonRequest struct {
	IDParam
}

func (r *GetPersonRequest) Validate() error {
	return r.parse()
}

type DeletePersonRequest struct {
	IDParam
}

func (r *DeletePersonRequest) Validate() error {
	return r.parse()
}

// PhonebookInfo is the body of GET /info.
type PhonebookInfo struct {
	Count int
	At    time.Time
}

func (i PhonebookInfo) String() string {
	return fmt.Sprintf("Phonebook has info for %d people\n%s", i.Count, i.At.Format(time.RFC1123))
}
