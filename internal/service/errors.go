package service

import "errors"

var (
	// ErrLoginOnServer wraps every login failure reported by the server or
	// the transport.
	ErrLoginOnServer = errors.New("login failed")
	// ErrRegisterOnServer wraps every registration failure; the server's own
	// message (e.g. duplicate username) is preserved in the chain.
	ErrRegisterOnServer = errors.New("registration failed")
	// ErrEmptyToken means the login response contained no access token.
	ErrEmptyToken = errors.New("empty access token in login response")
)
