package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestTokenIssueAndParse(t *testing.T) {
	issuedAt := time.Now().Truncate(time.Second)
	issuer := NewTokenIssuer("secret", time.Hour)
	issuer.now = fixedClock(issuedAt)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.IssuedAt.Time.Equal(issuedAt))
	assert.Equal(t, time.Hour, claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
}

func TestTokenIDsAreUnique(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	first, err := issuer.Issue(1)
	require.NoError(t, err)
	second, err := issuer.Issue(1)
	require.NoError(t, err)

	a, err := issuer.Parse(first)
	require.NoError(t, err)
	b, err := issuer.Parse(second)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTokenExpires(t *testing.T) {
	issuedAt := time.Now()
	issuer := NewTokenIssuer("secret", time.Hour)
	issuer.now = fixedClock(issuedAt)

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	issuer.now = fixedClock(issuedAt.Add(time.Hour + time.Minute))
	_, err = issuer.Parse(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsTamperingAndForeignKeys(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, err := issuer.Issue(7)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1}).SignedString([]byte("other"))
	require.NoError(t, err)
	forgedParts := strings.Split(forged, ".")
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err = issuer.Parse(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenIssuer("another-secret", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Parse(none)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssueRequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour).Issue(1)
	assert.Error(t, err)
}
