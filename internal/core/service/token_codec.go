package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
)

// defaultTokenTTL is the bearer token lifetime. Tokens are stateless: there
// is no server-side revocation, so validity is purely signature + expiry.
const defaultTokenTTL = 7 * 24 * time.Hour

// TokenCodec issues and verifies HS256-signed identity tokens.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue encodes the account's id, role and approval state with an expiry
// ttl from now. No side effects beyond the produced string.
func (c *TokenCodec) Issue(account *domain.Account) (string, error) {
	now := c.now()
	claims := jwt.MapClaims{
		"sub":      account.ID,
		"role":     string(account.Role),
		"approved": account.Approved,
		"iat":      now.Unix(),
		"exp":      now.Add(c.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature and expiry and recovers the Identity. Every
// failure mode returns the same domain.ErrInvalidToken so callers cannot
// tell which part of the token was wrong.
func (c *TokenCodec) Verify(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))
	if err != nil || !tkn.Valid {
		return domain.Anonymous, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return domain.Anonymous, domain.ErrInvalidToken
	}
	approved, _ := claims["approved"].(bool)

	return domain.Identity{
		AccountID: sub,
		Role:      domain.Role(role),
		Approved:  approved,
	}, nil
}
