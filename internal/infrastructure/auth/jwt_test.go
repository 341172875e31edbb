package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: time.Hour,
		Issuer:     "test-issuer",
	})
}

func newTestInput() GenerateTokenInput {
	return GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "admin",
		Role:     "admin",
	}
}

func TestGenerateToken(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()

	token, err := svc.GenerateToken(input)
	require.NoError(t, err)

	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)
}

func TestValidateToken_Success(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()

	token, err := svc.GenerateToken(input)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, input.UserID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID, "every token carries a jti")

	userID, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, input.UserID, userID)
}

func TestGenerateToken_UniqueJTI(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()

	a, err := svc.GenerateToken(input)
	require.NoError(t, err)
	b, err := svc.GenerateToken(input)
	require.NoError(t, err)

	ca, err := svc.ValidateToken(a.AccessToken)
	require.NoError(t, err)
	cb, err := svc.ValidateToken(b.AccessToken)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateToken(newTestInput())
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Invalid(t *testing.T) {
	svc := newTestJWTService()

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, raw)
	}
}

func TestValidateToken_DifferentSecret(t *testing.T) {
	other := NewJWTService(config.JWTConfig{
		Secret:     "another-secret-key-of-32-characters",
		Expiration: time.Hour,
		Issuer:     "test-issuer",
	})
	token, err := other.GenerateToken(newTestInput())
	require.NoError(t, err)

	_, err = newTestJWTService().ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: uuid.NewString(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestJWTService().ValidateToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingUserID(t *testing.T) {
	svc := newTestJWTService()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
	require.NoError(t, err)

	_, err = svc.ValidateToken(raw)
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestClaims_GetRemainingTTL(t *testing.T) {
	c := &Claims{}
	assert.Zero(t, c.GetRemainingTTL())

	c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	assert.Zero(t, c.GetRemainingTTL())

	c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	assert.InDelta(t, time.Hour.Seconds(), c.GetRemainingTTL().Seconds(), 5)
}
