package models_test

import (
	"testing"

	"github.com/railbook/railbook-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	user := &models.User{Password: "s3cret-pass"}

	require.NoError(t, user.HashPassword())
	require.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("s3cret-pass"))
	assert.Error(t, user.CheckPassword("wrong-pass"))
}

func TestHashPasswordSkipsEmptyPassword(t *testing.T) {
	user := &models.User{}

	require.NoError(t, user.HashPassword())
	assert.Empty(t, user.PasswordHash)
}
