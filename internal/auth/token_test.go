package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer(t *testing.T, ttl time.Duration) *Issuer {
	t.Helper()
	iss, err := NewIssuer([]byte("test-secret"), ttl)
	require.NoError(t, err)
	return iss
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	_, err := NewIssuer(nil, time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestIssue_EmptyClaim(t *testing.T) {
	iss := testIssuer(t, time.Hour)

	_, err := iss.Issue("", "alice@example.com")
	assert.ErrorIs(t, err, ErrEmptyClaim)

	_, err = iss.Issue("user-1", "")
	assert.ErrorIs(t, err, ErrEmptyClaim)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	iss := testIssuer(t, 0).WithClock(func() time.Time { return now })

	token, err := iss.Issue("user-42", "alice@example.com")
	require.NoError(t, err)

	claims, reason := iss.Verify(token)
	require.Equal(t, RejectNone, reason)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(DefaultTokenTTL).Unix(), claims.ExpiresAt.Unix())
}

func TestVerify_TamperedToken(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	iss := testIssuer(t, time.Hour).WithClock(func() time.Time { return now })

	token, err := iss.Issue("user-1", "alice@example.com")
	require.NoError(t, err)

	// Flipping any single character must reject the whole token.
	for pos := 0; pos < len(token); pos++ {
		mutated := []byte(token)
		if mutated[pos] == 'A' {
			mutated[pos] = 'B'
		} else {
			mutated[pos] = 'A'
		}

		_, reason := iss.Verify(string(mutated))
		assert.NotEqual(t, RejectNone, reason, "mutation at position %d was accepted", pos)
	}
}

func TestVerify_NonCanonicalSignatureEncoding(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	iss := testIssuer(t, time.Hour).WithClock(func() time.Time { return now })

	token, err := iss.Issue("user-1", "alice@example.com")
	require.NoError(t, err)

	// An HS256 signature is 32 bytes, so the last of its 43 base64url
	// characters carries four payload bits and two trailing padding bits.
	// Flipping the lowest bit changes only padding: a lenient decoder yields
	// the identical signature bytes, yet the token is no longer the one that
	// was issued and must still be rejected.
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	idx := strings.IndexByte(alphabet, token[len(token)-1])
	require.GreaterOrEqual(t, idx, 0)
	mutated := token[:len(token)-1] + string(alphabet[idx^1])
	require.NotEqual(t, token, mutated)

	_, reason := iss.Verify(mutated)
	assert.Equal(t, RejectBadSignature, reason)
}

func TestVerify_Expired(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	iss := testIssuer(t, 0).WithClock(func() time.Time { return issuedAt })

	token, err := iss.Issue("user-1", "alice@example.com")
	require.NoError(t, err)

	// Just inside the window.
	iss.WithClock(func() time.Time { return issuedAt.Add(DefaultTokenTTL - time.Minute) })
	_, reason := iss.Verify(token)
	assert.Equal(t, RejectNone, reason)

	// Just past the window.
	iss.WithClock(func() time.Time { return issuedAt.Add(DefaultTokenTTL + time.Minute) })
	_, reason = iss.Verify(token)
	assert.Equal(t, RejectExpired, reason)
}

func TestVerify_WrongSecret(t *testing.T) {
	iss := testIssuer(t, time.Hour)

	other, err := NewIssuer([]byte("other-secret"), time.Hour)
	require.NoError(t, err)

	token, err := other.Issue("user-1", "alice@example.com")
	require.NoError(t, err)

	_, reason := iss.Verify(token)
	assert.Equal(t, RejectBadSignature, reason)
}

func TestVerify_UnexpectedAlgorithm(t *testing.T) {
	iss := testIssuer(t, time.Hour)
	now := time.Now()

	claims := Claims{
		UserID: "user-1",
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, reason := iss.Verify(unsigned)
	assert.Equal(t, RejectBadAlgorithm, reason)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, reason = iss.Verify(hs512)
	assert.Equal(t, RejectBadAlgorithm, reason)
}

func TestVerify_Malformed(t *testing.T) {
	iss := testIssuer(t, time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d", "not.a.jwt"} {
		_, reason := iss.Verify(raw)
		assert.Equal(t, RejectMalformed, reason, "input %q", raw)
	}
}
