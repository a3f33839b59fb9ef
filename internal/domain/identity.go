package domain

// TokenVerifier verifies a bearer token issued by the identity provider and returns the
// authenticated subject (user ID).
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}
