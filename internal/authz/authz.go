// Package authz holds the access-gate predicates as plain functions, so the
// route-to-permission matrix can be tested without spinning up the web layer.
package authz

import (
	"context"
	"net/http"
	"strings"

	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/response"
)

// Decision is the outcome of a single gate check.
type Decision struct {
	Allowed bool
	Status  int
	Code    response.ErrCode
}

// Allow is the passing decision.
var Allow = Decision{Allowed: true}

func deny(status int, code response.ErrCode) Decision {
	return Decision{Status: status, Code: code}
}

// VerifyFunc validates a bearer token and returns the identity claim (email)
// signed into it.
type VerifyFunc func(token string) (email string, err error)

// RoleResolver looks up a user's role by identity, on every call — role
// checks are intentionally uncached.
type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (model.Role, error)
}

// CheckCredential is the credential gate: the Authorization header must be
// present (401 otherwise) and carry a valid bearer token (403 otherwise).
// On success it returns the identity claim for the downstream role gate.
func CheckCredential(authHeader string, verify VerifyFunc) (string, Decision) {
	if authHeader == "" {
		return "", deny(http.StatusUnauthorized, response.ErrTokenRequired)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", deny(http.StatusUnauthorized, response.ErrTokenRequired)
	}

	email, err := verify(parts[1])
	if err != nil {
		return "", deny(http.StatusForbidden, response.ErrTokenInvalid)
	}

	return email, Allow
}

// CheckRole is the role gate: fetch the user behind the verified claim and
// compare the stored role to the required one. An unknown user carries the
// default role and is denied like any other mismatch.
func CheckRole(ctx context.Context, resolver RoleResolver, email string, required model.Role) Decision {
	role, err := resolver.ResolveRole(ctx, email)
	if err != nil {
		return deny(http.StatusInternalServerError, response.ErrInternal)
	}
	if role != required {
		return deny(http.StatusForbidden, response.ErrForbidden)
	}
	return Allow
}
