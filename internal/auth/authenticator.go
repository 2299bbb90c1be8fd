package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// StaticAuthenticator validates a single credential pair. The password is
// kept only as a bcrypt hash, so a real credential backend can replace
// this without changing callers.
type StaticAuthenticator struct {
	username     string
	passwordHash []byte
}

// NewStaticAuthenticator hashes the given password and returns an
// authenticator that accepts exactly this pair.
func NewStaticAuthenticator(username, password string) (*StaticAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticAuthenticator{username: username, passwordHash: hash}, nil
}

// Authenticate reports whether the pair matches. Callers get no detail
// about which field was wrong.
func (a *StaticAuthenticator) Authenticate(username, password string) bool {
	if username != a.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
}
