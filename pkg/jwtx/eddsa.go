package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a session token and returns its claims when valid.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Keypair signs and verifies session tokens with a single Ed25519 key.
// Keys are ephemeral: sessions do not survive a process restart, which is
// acceptable for a 12h session TTL and keeps key management out of the
// deployment story.
type Keypair struct {
	kid    string
	key    ed25519.PrivateKey
	pub    ed25519.PublicKey
	issuer string
}

// NewEphemeralKeypair generates a fresh Ed25519 keypair for session signing.
func NewEphemeralKeypair(kid, issuer string) (*Keypair, error) {
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate ed25519 key: %w", err)
	}
	return &Keypair{kid: kid, key: key, pub: pub, issuer: issuer}, nil
}

// KID returns the key identifier stamped into token headers.
func (k *Keypair) KID() string { return k.kid }

// Sign turns claims into a signed compact JWT string.
func (k *Keypair) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = k.kid
	return t.SignedString(k.key)
}

// Verify parses and validates a token signed by this keypair.
func (k *Keypair) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid != k.kid {
			return nil, fmt.Errorf("jwtx: unknown kid %q", kid)
		}
		return k.pub, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, errors.New("jwtx: invalid token claims")
	}

	if err := claims.ValidateIssuer(k.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}
	return *claims, nil
}
