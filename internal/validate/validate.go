// Package validate checks request fields against declarative constraints and
// collects every violation into a single domain.ValidationError.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/msomdec/anime-service/internal/domain"
)

// emailPattern accepts a dot-separated local part of the RFC 5322 atom
// characters, an '@', and one or more dot-separated domain labels. Letters
// must be lowercase.
var emailPattern = regexp.MustCompile(`^[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$`)

const (
	msgRequired    = "The field '%s' is required"
	msgIDNull      = "The field 'id' cannot be null"
	msgNotPositive = "The user id must be a positive number higher than one"
	msgEmail       = "Email is not valid"
)

// Validator accumulates violations in the order the checks run.
type Validator struct {
	violations []string
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Required fails when value is empty or only whitespace.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.violations = append(v.violations, fmt.Sprintf(msgRequired, field))
	}
	return v
}

// RequiredID fails when id is nil.
func (v *Validator) RequiredID(id *int64) *Validator {
	if id == nil {
		v.violations = append(v.violations, msgIDNull)
	}
	return v
}

// PositiveID fails when id is present but not greater than zero.
func (v *Validator) PositiveID(id *int64) *Validator {
	if id != nil && *id <= 0 {
		v.violations = append(v.violations, msgNotPositive)
	}
	return v
}

// Email fails when value is non-blank and not a valid address. Blank values
// are left to Required.
func (v *Validator) Email(value string) *Validator {
	if strings.TrimSpace(value) != "" && !IsEmail(value) {
		v.violations = append(v.violations, msgEmail)
	}
	return v
}

// Err returns a *domain.ValidationError holding every violation, or nil.
func (v *Validator) Err() error {
	if len(v.violations) == 0 {
		return nil
	}
	return &domain.ValidationError{Violations: v.violations}
}

// IsEmail reports whether s matches the accepted email address pattern.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
