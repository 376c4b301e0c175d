package service_test

import (
	"testing"

	errorvalues "github.com/nmehta/activityclock/internal/error_values"
	"github.com/nmehta/activityclock/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthServiceLogin(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	auth := service.NewAuthService(string(hash))

	assert.NoError(t, auth.Login("hunter2"))
	assert.ErrorIs(t, auth.Login("hunter3"), errorvalues.ErrWrongPassword)
	assert.ErrorIs(t, auth.Login(""), errorvalues.ErrWrongPassword)
}
