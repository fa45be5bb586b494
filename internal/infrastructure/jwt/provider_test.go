package jwtinfra

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := NewProvider("test-secret", time.Hour)
	require.NoError(t, err)
	return p
}

func TestNewProvider_EmptySecret(t *testing.T) {
	_, err := NewProvider("", time.Hour)
	assert.Error(t, err)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	p := newTestProvider(t)

	token, err := p.Sign("01HX5ZZKBKACTAV9WEVGEMMVRY")
	require.NoError(t, err)

	id, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "01HX5ZZKBKACTAV9WEVGEMMVRY", id)
}

func TestVerify_TamperedSignature(t *testing.T) {
	p := newTestProvider(t)

	token, err := p.Sign("p1")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = p.Verify(tampered)
	assert.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	p := newTestProvider(t)
	other, err := NewProvider("other-secret", time.Hour)
	require.NoError(t, err)

	token, err := other.Sign("p1")
	require.NoError(t, err)

	_, err = p.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	p, err := NewProvider("test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := p.Sign("p1")
	require.NoError(t, err)

	_, err = p.Verify(token)
	assert.Error(t, err)
}

func TestVerify_MissingParticipantID(t *testing.T) {
	p := newTestProvider(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = p.Verify(signed)
	assert.ErrorContains(t, err, "no participant id")
}

func TestVerify_RejectsUnexpectedMethod(t *testing.T) {
	p := newTestProvider(t)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ParticipantID: "p1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = p.Verify(signed)
	assert.Error(t, err)
}
