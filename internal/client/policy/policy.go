// Package policy maps a session's role and the selected car scope onto the
// query sent to the server and the controls the terminal offers.
//
// Nothing here is a security boundary. The server enforces ownership and
// admin rights; these flags only decide what is worth showing.
package policy

import (
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/carstorage/internal/client/session"
	"github.com/dmitrijs2005/carstorage/internal/common"
)

// ScopeParam is the query parameter that narrows GET /api/cars.
const ScopeParam = "user_id"

type Capabilities struct {
	CanChooseScope    bool
	CanSeeOwnerColumn bool
	CanGrantAdmin     bool
	CanDeleteUser     bool
	CanCreateUser     bool
}

// Decision is the outcome of Evaluate. Scope is "" for the implicit
// self-scope of a non-admin session.
type Decision struct {
	Scope string
	Query url.Values
	Capabilities
}

// Evaluate applies the role table:
//
//	non-admin, any scope   -> no query, no owner column
//	admin, "all"           -> user_id=all, owner column
//	admin, <id>            -> user_id=<id>, no owner column
//
// An admin with nothing selected yet is treated as "all".
func Evaluate(s session.Session, selectedScope string) Decision {
	if !s.IsAdmin {
		return Decision{}
	}

	scope := selectedScope
	if scope == "" {
		scope = common.ScopeAll
	}
	return Decision{
		Scope: scope,
		Query: url.Values{ScopeParam: {scope}},
		Capabilities: Capabilities{
			CanChooseScope:    true,
			CanSeeOwnerColumn: scope == common.ScopeAll,
			CanGrantAdmin:     true,
			CanDeleteUser:     true,
			CanCreateUser:     true,
		},
	}
}

// OwnerForCreate returns the owner to put on a new car draft: the selected
// user when an admin is looking at one user's cars, otherwise 0 so the
// server assigns the caller.
func OwnerForCreate(s session.Session, selectedScope string) int64 {
	if !s.IsAdmin {
		return 0
	}
	id, ok := ParseScope(selectedScope)
	if !ok {
		return 0
	}
	return id
}

// ParseScope reports whether scope names a single user and returns its id.
func ParseScope(scope string) (int64, bool) {
	if scope == "" || scope == common.ScopeAll {
		return 0, false
	}
	id, err := strconv.ParseInt(scope, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
