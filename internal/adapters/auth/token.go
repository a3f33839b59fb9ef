package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"tiershowcase/internal/domain"
)

const clockLeeway = 30 * time.Second

// VerifierConfig holds the token checks applied on top of signature validation.
// Empty Issuer or Audience disables the corresponding check.
type VerifierConfig struct {
	Issuer   string
	Audience string
}

type jwtVerifier struct {
	keyFunc jwt.Keyfunc
	parser  *jwt.Parser
}

// NewHMACVerifier returns a TokenVerifier for HS256 tokens signed with a shared secret.
func NewHMACVerifier(secret string, cfg VerifierConfig) domain.TokenVerifier {
	key := []byte(secret)
	return newJWTVerifier(func(*jwt.Token) (any, error) { return key, nil }, []string{jwt.SigningMethodHS256.Alg()}, cfg)
}

// NewJWKSVerifier returns a TokenVerifier for RS256/ES256 tokens whose keys are published
// by the identity provider at jwksURL. Keys are refreshed in the background until ctx is done.
func NewJWKSVerifier(ctx context.Context, jwksURL string, cfg VerifierConfig) (domain.TokenVerifier, error) {
	k, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to load jwks from %s: %w", jwksURL, err)
	}
	methods := []string{jwt.SigningMethodRS256.Alg(), jwt.SigningMethodES256.Alg()}
	return newJWTVerifier(k.Keyfunc, methods, cfg), nil
}

func newJWTVerifier(keyFunc jwt.Keyfunc, methods []string, cfg VerifierConfig) *jwtVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithLeeway(clockLeeway),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	return &jwtVerifier{keyFunc: keyFunc, parser: jwt.NewParser(opts...)}
}

func (v *jwtVerifier) Verify(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	if _, err := v.parser.ParseWithClaims(token, &claims, v.keyFunc); err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if claims.Subject == "" {
		return "", errors.New("invalid token: missing subject")
	}
	return claims.Subject, nil
}
