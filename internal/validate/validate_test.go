package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/anime-service/internal/domain"
	"github.com/msomdec/anime-service/internal/validate"
)

func id(v int64) *int64 { return &v }

func TestRequired(t *testing.T) {
	for _, value := range []string{"", " ", "\t\n"} {
		err := validate.New().Required("name", value).Err()
		require.Error(t, err, "value %q", value)
		assert.Equal(t, "The field 'name' is required", err.Error())
	}
	assert.NoError(t, validate.New().Required("name", "Mappa").Err())
}

func TestRequiredIDAndPositive(t *testing.T) {
	err := validate.New().RequiredID(nil).PositiveID(nil).Err()
	require.Error(t, err)
	assert.Equal(t, "The field 'id' cannot be null", err.Error())

	err = validate.New().RequiredID(id(0)).PositiveID(id(0)).Err()
	require.Error(t, err)
	assert.Equal(t, "The user id must be a positive number higher than one", err.Error())

	assert.NoError(t, validate.New().RequiredID(id(3)).PositiveID(id(3)).Err())
}

func TestCollectsAllViolations(t *testing.T) {
	err := validate.New().
		RequiredID(nil).
		Required("firstName", "").
		Required("lastName", " ").
		Required("email", "").
		Email("").
		Err()

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{
		"The field 'id' cannot be null",
		"The field 'firstName' is required",
		"The field 'lastName' is required",
		"The field 'email' is required",
	}, verr.Violations)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmail(t *testing.T) {
	valid := []string{
		"marcelosemdente@example.com",
		"first.last@sub.example.co",
		"o'neil+tag@example.org",
	}
	for _, s := range valid {
		assert.True(t, validate.IsEmail(s), s)
	}

	invalid := []string{
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user@-example.com",
		"user..dots@example.com",
		"user@example.com ",
		"UPPER@EXAMPLE.COM",
		"John@Example.COM",
		"john@example.COM",
	}
	for _, s := range invalid {
		assert.False(t, validate.IsEmail(s), s)
	}

	err := validate.New().Email("not-an-email").Err()
	require.Error(t, err)
	assert.Equal(t, "Email is not valid", err.Error())
}
