// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"crypto/subtle"
	"errors"

	"folio/internal/session"
)

// Demo credentials accepted by the mock login.
const (
	DemoUsername = "admin"
	DemoPassword = "password"
)

// ErrInvalidCredentials is returned for any pair other than the demo one.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Messages shown on the login form.
const (
	MsgInvalidCredentials = "Invalid credentials. Use admin/password for demo."
	MsgLoginFailed        = "Login failed. Please try again."
)

// LoginMessage maps a login error to the single form message.
func LoginMessage(err error) string {
	if errors.Is(err, ErrInvalidCredentials) {
		return MsgInvalidCredentials
	}
	return MsgLoginFailed
}

// LoginForm is the login page state.
type LoginForm struct {
	Username  string
	Error     string
	CSRFToken string
}

// CheckCredentials compares a submission against the demo pair and returns
// the placeholder token on success. The token is not validated anywhere.
func CheckCredentials(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(DemoUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(DemoPassword)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return session.MockToken, nil
}
