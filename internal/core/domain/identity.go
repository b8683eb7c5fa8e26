package domain

// Identity is the authenticated context attached to a single request and
// discarded with it. The zero value is the anonymous identity, used for
// requests that carry no (usable) credentials.
type Identity struct {
	AccountID string
	Role      Role
	// Approved reflects the account's approval state at token-issue time,
	// not the live value in the store.
	Approved bool
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{}

// IsAnonymous reports whether no authenticated account backs this identity.
func (id Identity) IsAnonymous() bool {
	return id.AccountID == ""
}

// IsAdmin reports whether the identity belongs to an authenticated admin.
func (id Identity) IsAdmin() bool {
	return !id.IsAnonymous() && id.Role == RoleAdmin
}
