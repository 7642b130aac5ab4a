// Package session holds the authentication state of the client: the token
// returned by /api/login and the identity claims decoded from it.
//
// Claims are decoded without verifying the signature. They drive what the
// terminal shows; the server remains the only authority on what a session
// may do.
package session

import (
	"fmt"

	"github.com/dmitrijs2005/carstorage/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the current identity. The zero value is the anonymous session.
type Session struct {
	Token     string
	SubjectID int64
	IsAdmin   bool
}

func (s Session) Authenticated() bool { return s.Token != "" }

// Claims mirrors the payload the server signs.
type Claims struct {
	ID      int64 `json:"id"`
	IsAdmin bool  `json:"is_admin"`
	jwt.RegisteredClaims
}

// Decode reads the claims of token without checking its signature or expiry.
func Decode(token string) (Session, error) {
	var c Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return Session{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if c.ID == 0 {
		return Session{}, fmt.Errorf("%w: no subject id", common.ErrInvalidToken)
	}
	return Session{Token: token, SubjectID: c.ID, IsAdmin: c.IsAdmin}, nil
}
