package utils // package utils provides token issuing, password hashing and id helpers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for the signed-claims scheme

	"github.com/iliyamo/renttrack/internal/model"
)

// ErrInvalidToken is returned when a token cannot be resolved to claims.
var ErrInvalidToken = errors.New("invalid token")

// Claims is what a token says about its bearer.
type Claims struct {
	Subject string     // user id
	Role    model.Role // session role (ADMIN, LANDLORD, TENANT)
}

// Tokenizer issues opaque session tokens and resolves them back to claims.
type Tokenizer interface {
	Issue(role model.Role) (token string, claims Claims, err error)
	Parse(token string) (Claims, error)
}

// Token scheme names accepted by NewTokenizer.
const (
	SchemePrefix = "prefix"
	SchemeJWT    = "jwt"
)

// NewTokenizer returns the tokenizer for scheme.  The jwt scheme needs a
// non-empty secret.
func NewTokenizer(scheme, secret string, ttl time.Duration) (Tokenizer, error) {
	switch strings.ToLower(scheme) {
	case "", SchemePrefix:
		return PrefixTokens{}, nil
	case SchemeJWT:
		if secret == "" {
			return nil, errors.New("jwt token scheme requires a secret")
		}
		return &JWTTokens{Secret: secret, TTL: ttl}, nil
	}
	return nil, fmt.Errorf("unknown token scheme %q", scheme)
}

// PrefixTokens encodes the role in the token text itself:
// "<role>-token-<suffix>".  Anyone can forge such a token; it exists to
// keep the demo dashboard's login flow working and should be replaced by
// JWTTokens wherever the role matters.
type PrefixTokens struct{}

const prefixMarker = "-token-"

// Issue returns a fresh "<role>-token-<suffix>" token.
func (PrefixTokens) Issue(role model.Role) (string, Claims, error) {
	r := strings.ToLower(string(role))
	suffix := ShortID()
	return r + prefixMarker + suffix, Claims{Subject: r + "-" + suffix, Role: role}, nil
}

// Parse maps "landlord-token..." to LANDLORD, "tenant-token..." to TENANT
// and any other non-empty token to ADMIN.
func (PrefixTokens) Parse(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrInvalidToken
	}
	role := model.SessionAdmin
	switch {
	case strings.HasPrefix(token, "landlord"+prefixMarker):
		role = model.SessionLandlord
	case strings.HasPrefix(token, "tenant"+prefixMarker):
		role = model.SessionTenant
	}
	r := strings.ToLower(string(role))
	suffix := token
	if i := strings.Index(token, prefixMarker); i >= 0 {
		suffix = token[i+len(prefixMarker):]
	}
	return Claims{Subject: r + "-" + suffix, Role: role}, nil
}

// JWTTokens signs HS256 tokens carrying sub, role, exp and iat claims.
type JWTTokens struct {
	Secret string
	TTL    time.Duration
	Now    func() time.Time // nil means time.Now
}

func (j *JWTTokens) now() time.Time {
	if j.Now != nil {
		return j.Now().UTC()
	}
	return time.Now().UTC()
}

// Issue signs a token for a new session of role.
func (j *JWTTokens) Issue(role model.Role) (string, Claims, error) {
	now := j.now()
	ttl := j.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	claims := Claims{Subject: strings.ToLower(string(role)) + "-" + ShortID(), Role: role}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  claims.Subject,
		"role": string(role),
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	})
	signed, err := t.SignedString([]byte(j.Secret))
	if err != nil {
		return "", Claims{}, err
	}
	return signed, claims, nil
}

// Parse verifies the signature and expiry and returns the claims.
func (j *JWTTokens) Parse(raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(j.Secret), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, _ := mc["sub"].(string)
	role, _ := mc["role"].(string)
	if sub == "" || !model.Role(role).IsSession() {
		return Claims{}, ErrInvalidToken
	}
	return Claims{Subject: sub, Role: model.Role(role)}, nil
}
