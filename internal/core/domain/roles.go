package domain

import (
	"net/http"
	"strings"
)

// Permissions is the capability set derived from a role. It is recomputed
// on every request and never persisted.
type Permissions struct {
	CanCreate   bool
	CanEdit     bool
	CanDelete   bool
	CanRegister bool
}

// PermissionsFor maps a role to its capability set. This table is the single
// source of truth for authorization decisions; handlers must not re-implement
// role comparisons. An unknown or empty role grants nothing.
func PermissionsFor(role string) Permissions {
	switch role {
	case RoleAdmin:
		return Permissions{CanCreate: true, CanEdit: true, CanDelete: true, CanRegister: true}
	case RoleSuperuser:
		return Permissions{CanCreate: true, CanEdit: true, CanDelete: false, CanRegister: false}
	default:
		return Permissions{}
	}
}

// Capability names a single permission the gate can require for a request.
type Capability int

const (
	CapabilityNone Capability = iota
	CapabilityCreate
	CapabilityEdit
	CapabilityDelete
	CapabilityRegister
)

// RequiredCapability maps an API request to the capability it needs. The
// mapping is declarative so every mutating verb is enforced at the gate
// rather than inside individual handlers: POST requires create, PUT requires
// edit, DELETE requires delete, and POST /api/register requires register.
// Reads require no capability beyond a valid session.
func RequiredCapability(method, path string) Capability {
	if !strings.HasPrefix(path, "/api") {
		return CapabilityNone
	}
	if path == "/api/register" {
		return CapabilityRegister
	}
	switch method {
	case http.MethodPost:
		return CapabilityCreate
	case http.MethodPut:
		return CapabilityEdit
	case http.MethodDelete:
		return CapabilityDelete
	default:
		return CapabilityNone
	}
}

// Allows reports whether the capability set satisfies the given requirement.
func (p Permissions) Allows(required Capability) bool {
	switch required {
	case CapabilityNone:
		return true
	case CapabilityCreate:
		return p.CanCreate
	case CapabilityEdit:
		return p.CanEdit
	case CapabilityDelete:
		return p.CanDelete
	case CapabilityRegister:
		return p.CanRegister
	default:
		return false
	}
}
