//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"petconnect/internal/domain/user"
	"petconnect/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleShelter)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "shelter", claims.Role)
	assert.Equal(t, "petconnect", claims.Issuer)
}

func TestValidateTokenRejections(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), user.RoleAdopter)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("another-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), user.RoleAdopter)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage string", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
