package commands

import "guardbot/internal/domain"

// Precondition gates a command before its handler runs. A non-nil error
// short-circuits dispatch; the router reports it to the invoker.
type Precondition func(inv domain.Invocation) error

// IsAdmin reports whether the invoker may run privileged commands: the
// platform administrator permission, or any role named exactly adminRole
// (case-sensitive).
func IsAdmin(inv domain.Invocation, adminRole string) bool {
	if inv.IsAdministrator {
		return true
	}
	for _, name := range inv.RoleNames {
		if name == adminRole {
			return true
		}
	}
	return false
}

// RequireAdmin builds the admin precondition used by every privileged
// command registration.
func RequireAdmin(adminRole string) Precondition {
	return func(inv domain.Invocation) error {
		if !IsAdmin(inv, adminRole) {
			return domain.ErrNotAuthorized
		}
		return nil
	}
}
