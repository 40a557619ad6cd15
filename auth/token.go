package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vasavi-eco-club/club-site-backend/models"
)

// TokenTTL is the validity window for issued tokens. Tokens are
// self-contained; there is no server-side session or revocation list, so a
// token stays valid until this window closes.
const TokenTTL = 24 * time.Hour

var (
	// ErrTokenExpired means the token verified but its validity window has
	// passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure: bad
	// signature, malformed structure, wrong algorithm.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the JWT payload asserting the admin's identity.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256-signed bearer tokens.
type Tokens struct {
	secret []byte
}

func NewTokens(secret string) Tokens {
	return Tokens{secret: []byte(secret)}
}

// Issue produces a signed token for the principal, valid for TokenTTL.
func (t Tokens) Issue(user *models.AdminUser) (string, error) {
	return t.issueAt(user, time.Now())
}

func (t Tokens) issueAt(user *models.AdminUser, issuedAt time.Time) (string, error) {
	claims := Claims{
		ID:       user.ID.String(),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Expired tokens yield ErrTokenExpired; everything else ErrTokenInvalid.
func (t Tokens) Verify(tokenStr string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrTokenInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrTokenInvalid
	}
	return *claims, nil
}
