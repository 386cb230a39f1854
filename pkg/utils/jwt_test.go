package utils_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/railbook/railbook-backend/internal/models"
	"github.com/railbook/railbook-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{
		Model: gorm.Model{ID: 42},
		Email: "asha@example.com",
	}

	tokenString, err := utils.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := utils.ValidateToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["id"])
	assert.Equal(t, "asha@example.com", claims["email"])
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")

	tokenString, err := utils.GenerateToken(&models.User{Model: gorm.Model{ID: 1}})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")

	token, err := utils.ValidateToken(tokenString)
	if err == nil {
		assert.False(t, token.Valid)
	} else {
		assert.Error(t, err)
	}
}
