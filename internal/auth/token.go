package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity payload embedded in a session token: the subject
// (user record id), the email at issuance time (informational, not
// authoritative) and the issued-at/expiry pair. Claims are never mutated;
// re-authentication supersedes them with a fresh set.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// RejectReason classifies why token verification failed. Every reason
// collapses to the same "no session" outcome at the HTTP boundary; they stay
// distinct here so logs can tell tampering from natural expiry.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectMalformed
	RejectBadSignature
	RejectBadAlgorithm
	RejectExpired
)

func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectMalformed:
		return "malformed"
	case RejectBadSignature:
		return "bad_signature"
	case RejectBadAlgorithm:
		return "bad_algorithm"
	case RejectExpired:
		return "expired"
	default:
		return "unknown"
	}
}

const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	ErrEmptySecret = errors.New("auth: signing secret is empty")
	ErrEmptyClaim  = errors.New("auth: subject and email must be non-empty")

	errUnexpectedAlgorithm = errors.New("auth: unexpected signing algorithm")
)

// Issuer mints and verifies HS256 session tokens with a process-wide secret.
// The secret is immutable after construction; rotation requires a restart.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret []byte, ttl time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{secret: secret, ttl: ttl, now: time.Now}, nil
}

// WithClock replaces the issuer's time source and returns the issuer.
// Intended for tests that need a fixed virtual clock.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// TTL returns the validity window applied to issued tokens.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue mints a signed session token for the given subject. Pure
// computation: no storage, no side effects.
func (i *Issuer) Issue(userID, email string) (string, error) {
	if userID == "" || email == "" {
		return "", ErrEmptyClaim
	}

	now := i.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks an arbitrary, possibly adversarial token string. It is total
// over its input: it never panics and always returns a definite verdict,
// (claims, RejectNone) on acceptance or (nil, reason) on rejection. This is
// the trust boundary for everything the client sends back.
func (i *Issuer) Verify(raw string) (*Claims, RejectReason) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		// The algorithm tag must match what we issue. Anything else,
		// including "none", is rejected before signature checking.
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errUnexpectedAlgorithm
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
		// Reject non-canonical base64url segments. Without this, a flip of
		// the trailing padding bits in the final signature character decodes
		// to the same bytes and the mutated token would verify.
		jwt.WithStrictDecoding(),
	)
	if err == nil {
		return claims, RejectNone
	}

	switch {
	case errors.Is(err, errUnexpectedAlgorithm):
		return nil, RejectBadAlgorithm
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, RejectExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, RejectBadSignature
	default:
		return nil, RejectMalformed
	}
}
