package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssuerRequiresSecret(t *testing.T) {
	_, err := NewIssuer("")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestIssueAndParseRoundTrip(t *testing.T) {
	issuer, err := NewIssuer("test-secret")
	require.NoError(t, err)

	issuedAt := time.Now().UTC().Truncate(time.Second)
	issuer.now = func() time.Time { return issuedAt }

	signed, expiresAt, err := issuer.Issue("ABC")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(12*time.Hour), expiresAt)

	verifier, err := NewIssuer("test-secret")
	require.NoError(t, err)

	claims, err := verifier.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "ABC", claims.VendorCode)
	assert.Equal(t, IssuerName, claims.Issuer)
	assert.Equal(t, issuedAt.Add(12*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer, err := NewIssuer("test-secret")
	require.NoError(t, err)

	signed, _, err := issuer.Issue("ABC")
	require.NoError(t, err)

	other, err := NewIssuer("different-secret")
	require.NoError(t, err)

	_, err = other.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer, err := NewIssuer("test-secret")
	require.NoError(t, err)

	issuer.now = func() time.Time { return time.Now().Add(-13 * time.Hour) }
	signed, _, err := issuer.Issue("ABC")
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
