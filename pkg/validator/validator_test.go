package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"omitempty,email"`
	Price int64  `validate:"gt=0"`
}

func TestValidateOK(t *testing.T) {
	err := Validate(&sampleRequest{Name: "Kaju Katli", Price: 450})
	assert.NoError(t, err)
}

func TestValidateFields(t *testing.T) {
	err := Validate(&sampleRequest{Name: "K", Email: "not-an-email", Price: -1})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	fields := vErr.Fields()
	assert.Contains(t, fields, "Name")
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Price")
	assert.Equal(t, "must be a valid email address", fields["Email"])
}
