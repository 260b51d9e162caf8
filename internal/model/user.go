package model

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/stacygol/bloglist/internal/validation"
)

const (
	MessageCredentialsRequired = "Username and password are required."
	MessageCredentialsTooShort = "Username and password are required. Both must be at least 3 characters long."
	MessageUsernameTaken       = "Username is already taken."
	MessagePasswordTooLong     = "Password must not exceed 72 bytes."

	minCredentialLength = 3

	// bcrypt ignores everything past 72 bytes and newer versions reject it.
	maxPasswordBytes = 72
)

// User is a registered account. PasswordHash never leaves the service.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r *RegisterUserRequest) Validate() error {
	var missing validation.CustomValidationErrors
	if r.Username == "" {
		missing = append(missing, validation.CustomValidationError{Field: "username", Message: MessageCredentialsRequired})
	}
	if r.Password == "" {
		missing = append(missing, validation.CustomValidationError{Field: "password", Message: MessageCredentialsRequired})
	}
	if len(missing) > 0 {
		return missing
	}

	var short validation.CustomValidationErrors
	if utf8.RuneCountInString(r.Username) < minCredentialLength {
		short = append(short, validation.CustomValidationError{Field: "username", Message: MessageCredentialsTooShort})
	}
	if utf8.RuneCountInString(r.Password) < minCredentialLength {
		short = append(short, validation.CustomValidationError{Field: "password", Message: MessageCredentialsTooShort})
	}
	if len(short) > 0 {
		return short
	}

	if len(r.Password) > maxPasswordBytes {
		return validation.CustomValidationErrors{{Field: "password", Message: MessagePasswordTooLong}}
	}

	return nil
}
