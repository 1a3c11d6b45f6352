// Package session implements the viewer's sign-in gate.
//
// The gate compares the submitted credentials with configured values held in
// the same process. It is a courtesy screen, not a security boundary: there
// is no lockout, no rate limiting and nothing outlives the process.
package session

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidCredentials is returned for any mismatch. It does not say which
// of the two values was wrong.
var ErrInvalidCredentials = errors.New("Invalid username or password")

// Gate is the unauthenticated/authenticated state machine.
type Gate struct {
	username      string
	password      string
	authenticated bool
	id            string
}

// New creates a gate expecting the given credentials.
func New(username, password string) *Gate {
	return &Gate{
		username: username,
		password: password,
	}
}

// Submit authenticates when both values match exactly.
// A mismatch leaves the gate unauthenticated.
func (g *Gate) Submit(username, password string) error {
	if username != g.username || password != g.password {
		return ErrInvalidCredentials
	}
	if !g.authenticated {
		g.authenticated = true
		g.id = uuid.NewString()
	}
	return nil
}

// Authenticated reports whether the user is signed in.
func (g *Gate) Authenticated() bool {
	return g.authenticated
}

// ID returns the identifier of the current session, or "" when signed out.
func (g *Gate) ID() string {
	return g.id
}

// Logout returns the gate to the unauthenticated state.
func (g *Gate) Logout() {
	g.authenticated = false
	g.id = ""
}
