package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sweetmoments/storefront/pkg/errors"
)

func TestIssueAndValidate(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	token, err := mgr.Issue(Identity{
		UserID: "owner-1",
		Email:  "owner@sweetmoments.shop",
		Name:   "Artisan Owner",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := mgr.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", identity.UserID)
	assert.Equal(t, "Artisan Owner", identity.Name)
}

func TestValidateRejectsGarbage(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	_, err := mgr.Validate("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issued := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, err := issued.Issue(Identity{UserID: "owner-1"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestValidateRejectsExpired(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute)

	token, err := mgr.Issue(Identity{UserID: "owner-1"})
	require.NoError(t, err)

	_, err = mgr.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
