// Package auth provides ERS HTTP Basic authentication.
package auth

import "net/http"

// Credentials holds the ERS admin account credentials.
type Credentials struct {
	Username string
	Password string
}

// Apply adds Basic authentication to an HTTP request.
func (c *Credentials) Apply(req *http.Request) {
	if c == nil {
		return
	}
	req.SetBasicAuth(c.Username, c.Password)
}

// Valid reports whether credentials are configured.
func (c *Credentials) Valid() bool {
	return c != nil && c.Username != "" && c.Password != ""
}
