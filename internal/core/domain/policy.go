package domain

// Intent distinguishes read access from mutating access when resolving
// ownership.
type Intent int

const (
	IntentRead Intent = iota
	IntentWrite
)

// Visibility controls whether non-owners may read a resource.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Ownership binds a resource to the account that created it. OwnerType is
// fixed to the creator's role at creation time and never changes afterwards.
type Ownership struct {
	OwnerID    string     `json:"owner_id" bson:"owner_id"`
	OwnerType  Role       `json:"owner_type" bson:"owner_type"`
	Visibility Visibility `json:"visibility" bson:"visibility"`
}

// RoleAllowed is the role-gate predicate: true iff the identity is
// authenticated and its role is in the allowed set. Anonymous identities are
// always denied, even for an empty set.
func RoleAllowed(id Identity, allowed ...Role) bool {
	if id.IsAnonymous() {
		return false
	}
	for _, r := range allowed {
		if id.Role == r {
			return true
		}
	}
	return false
}

// CanAccess is the ownership resolver. It decides over an already-loaded
// resource and performs no I/O.
//
// Reads of public resources are open to everyone, anonymous included. All
// other combinations (private reads, any write) require the caller to be the
// owner or an admin. Ownership is compared by account id, never by role: a
// partner cannot touch another partner's private resource.
func CanAccess(id Identity, o Ownership, intent Intent) bool {
	if intent == IntentRead && o.Visibility == VisibilityPublic {
		return true
	}
	if id.IsAnonymous() {
		return false
	}
	return id.AccountID == o.OwnerID || id.Role == RoleAdmin
}

// Scope describes which documents a collection read may return for a given
// identity. Repositories translate it into a query-time filter so that totals
// and page boundaries are computed over the correctly scoped set.
type Scope struct {
	// Unrestricted means no visibility filtering at all (admin).
	Unrestricted bool
	// OwnerID widens the scope from public-only to public ∪ own documents.
	// Empty for anonymous callers.
	OwnerID string
}

// ListScope derives the collection-read scope for an identity.
func ListScope(id Identity) Scope {
	if id.IsAdmin() {
		return Scope{Unrestricted: true}
	}
	return Scope{OwnerID: id.AccountID}
}
