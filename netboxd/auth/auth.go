// Package auth maps static bearer tokens to capability lists. Tokens are
// defined in the daemon config, there is no user database.
package auth

import (
	"net/http"
	"strings"

	"github.com/team-telnyx/netbox/netboxd/util"
)

const (
	CapChangeTermination = "circuits.change_circuittermination"
	CapChangeCircuit     = "circuits.change_circuit"
	CapAddCircuit        = "circuits.add_circuit"
	CapDeleteCircuit     = "circuits.delete_circuit"
	CapChangeProvider    = "circuits.change_provider"
	CapChangeCircuitType = "circuits.change_circuittype"

	// capAll grants everything
	capAll = "*"
)

type Checker interface {
	Allowed(token string, capability string) bool
}

type StaticChecker struct {
	tokens map[string][]string
}

func NewStaticChecker(tokens map[string][]string) *StaticChecker {
	return &StaticChecker{tokens: tokens}
}

func (c *StaticChecker) Allowed(token string, capability string) bool {
	if c == nil || token == "" {
		return false
	}

	capabilities, ok := c.tokens[token]
	if !ok {
		return false
	}

	if util.ContainsStr(capabilities, capAll) {
		return true
	}

	return util.ContainsStr(capabilities, capability)
}

// TokenFromRequest looks for a bearer token in the Authorization header,
// falling back to the session cookie set by the login form.
func TokenFromRequest(request *http.Request) string {
	authHeader := request.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	tokenCookie, err := request.Cookie("netbox_token")
	if err != nil {
		return ""
	}

	return tokenCookie.Value
}
