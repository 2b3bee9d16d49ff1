package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, err := svc.Generate(7, "admin", authorization.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := svc.Verify(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
	assert.Equal(t, "admin", claims.Subject())
}

func TestJWTService_VerifyRejects(t *testing.T) {
	svc := NewJWTService("test-secret", 60)
	token, err := svc.Generate(1, "admin", authorization.RoleSuperAdmin)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewJWTService("other", 60).Verify(token.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewJWTService("test-secret", 60)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Verify(token.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		now := time.Now()
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			AdminID: 1,
			Role:    "root",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.NoError(t, h.Verify("admin123", hash))
	assert.ErrorIs(t, h.Verify("wrong", hash), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Verify("admin123", "not-a-hash"), ErrPasswordMismatch)
}

func TestNewBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(100).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(0).cost)
}
