package jwt

import (
	"context"
	"testing"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessTokenClaims(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	teacherID := "7d0a5e36-2b8f-4f4e-9f39-0b2f4f9a1c11"
	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", &teacherID, user.RoleTeacher)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "teacher", claims["role"])
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, teacherID, claims["teacher_id"])
}

func TestGenerateAccessTokenWithoutTeacher(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	tokenString, _, err := svc.GenerateAccessToken("manager-1", nil, user.RoleManager)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "manager", claims["role"])
	_, hasTeacher := claims["teacher_id"]
	assert.False(t, hasTeacher)
}

func TestGenerateAccessTokenRejectsBadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("user-1", nil, user.RoleManager)
	assert.Error(t, err)
}
