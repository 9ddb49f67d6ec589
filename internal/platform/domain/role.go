package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Role is a single capability a user may hold. Roles are independent: a user
// can be observer and action owner at the same time.
type Role string

const (
	// RoleObserver logs observations.
	RoleObserver Role = "observer"
	// RoleActionOwner rectifies observations assigned to them.
	RoleActionOwner Role = "action_owner"
	// RoleManager verifies rectifications, manages archival and invites.
	RoleManager Role = "manager"
)

// allRoles is the closed set of valid capabilities.
var allRoles = []Role{RoleObserver, RoleActionOwner, RoleManager}

// ParseRole validates a role string against the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(strings.ToLower(s)))
	if !slices.Contains(allRoles, r) {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// RoleSet is the capability set carried by a user. Stored space-delimited.
type RoleSet []Role

// ParseRoleSet parses a space-delimited role list, rejecting unknown roles
// and deduplicating.
func ParseRoleSet(s string) (RoleSet, error) {
	var set RoleSet
	for _, part := range strings.Fields(s) {
		r, err := ParseRole(part)
		if err != nil {
			return nil, err
		}
		set = set.Add(r)
	}
	return set, nil
}

// Has reports whether the set contains the role.
func (s RoleSet) Has(r Role) bool {
	return slices.Contains(s, r)
}

// Add returns the set with r included, without duplicates.
func (s RoleSet) Add(r Role) RoleSet {
	if s.Has(r) {
		return s
	}
	return append(s, r)
}

// Strings returns the set as plain strings, for token claims and storage.
func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}

// String returns the canonical space-delimited encoding.
func (s RoleSet) String() string {
	return strings.Join(s.Strings(), " ")
}
