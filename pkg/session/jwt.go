package session

import (
	"crypto/rsa"
	"fmt"
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims of a staff session. Subject is the user id.
type Claims struct {
	TenantID string `json:"tid,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates RS256 session tokens.
type Verifier struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

// NewVerifier parses a PEM encoded RSA public key.
func NewVerifier(publicKeyPEM string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Verifier{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

// Verify checks signature and expiry and returns the session carried by
// token. Every failure is ErrUnauthorized.
func (v *Verifier) Verify(token string) (*Session, error) {
	var claims Claims
	if _, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session subject")
	}

	sess := &Session{
		UserID: domain.UserID(userID),
		Role:   domain.Role(claims.Role),
	}
	if claims.TenantID != "" {
		tenantID, err := uuid.Parse(claims.TenantID)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session tenant")
		}
		tid := domain.TenantID(tenantID)
		sess.TenantID = &tid
	}

	return sess, nil
}

// Issuer signs RS256 session tokens. The identity service uses it after a
// successful login; the jwt command uses it for operators.
type Issuer struct {
	key *rsa.PrivateKey
}

// NewIssuer parses a PEM encoded RSA private key.
func NewIssuer(privateKeyPEM string) (*Issuer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &Issuer{key: key}, nil
}

// Issue signs a token for sess valid for ttl from now.
func (i *Issuer) Issue(sess Session, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		Role: string(sess.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if sess.TenantID != nil {
		claims.TenantID = sess.TenantID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("could not sign session token: %w", err)
	}

	return signed, nil
}
