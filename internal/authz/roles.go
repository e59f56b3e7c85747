// Package authz centralizes the project authorization rules: a single role
// computation replaces ad-hoc owner/member checks, and a dispatcher executes
// only the mutations the computed role permits.
package authz

import (
	"github.com/teamupapp/teamup/internal/api"
)

// Role is the derived authorization category of a user relative to a project
type Role int

const (
	// RoleGuest is an unauthenticated user or one who is neither owner nor member
	RoleGuest Role = iota
	// RoleMember is a non-owner user present in the project's member set
	RoleMember
	// RoleOwner is the project's owner
	RoleOwner
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleMember:
		return "member"
	case RoleGuest:
		return "guest"
	default:
		return "unknown"
	}
}

// Action is a mutating project operation gated by role
type Action string

const (
	ActionJoin   Action = "join"
	ActionLeave  Action = "leave"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// ComputeRole derives the role for an identity and project pair. Ownership
// wins over membership: backends sometimes keep the owner inside the member
// set, and an owner must never be treated as a plain member.
func ComputeRole(identity *api.User, project *api.Project) Role {
	if identity == nil || project == nil {
		return RoleGuest
	}
	if identity.ID == project.Owner.ID {
		return RoleOwner
	}
	for _, member := range project.Members {
		if member.ID == identity.ID {
			return RoleMember
		}
	}
	return RoleGuest
}

// ActionsFor returns the exact set of actions available to a role.
// The sets are exhaustive and disjoint.
func ActionsFor(role Role) []Action {
	switch role {
	case RoleOwner:
		return []Action{ActionEdit, ActionDelete}
	case RoleMember:
		return []Action{ActionLeave}
	default:
		return []Action{ActionJoin}
	}
}

// Allows reports whether the role permits the action
func Allows(role Role, action Action) bool {
	for _, a := range ActionsFor(role) {
		if a == action {
			return true
		}
	}
	return false
}
