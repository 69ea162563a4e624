// Package permission decides whether a caller may perform an action on a
// user record. The policy is an ordered rule list evaluated top to bottom;
// the first matching rule decides, and every rule is a pure predicate over
// the input.
package permission

import (
	"github.com/stylesam/luxuria/internal/domain"
)

type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Input carries everything a rule may inspect. Target may be nil when the
// record is not yet resolved. RoleChange is true when the patch being
// evaluated touches the role field.
type Input struct {
	Action     Action
	Requester  domain.Requester
	Target     *domain.User
	RoleChange bool
}

func (in Input) targetsSelf() bool {
	return in.Target != nil && in.Requester.UserID == in.Target.ID
}

type rule struct {
	name    string
	applies func(Input) bool
	allow   bool
}

// Rule order is the contract: self role changes are rejected before the
// elevated-role shortcut, so nobody can grant themselves a role.
var rules = []rule{
	{
		name: "deny role change on own record",
		applies: func(in Input) bool {
			return in.Action == ActionUpdate && in.RoleChange && in.targetsSelf()
		},
		allow: false,
	},
	{
		name: "deny role change by non-elevated requester",
		applies: func(in Input) bool {
			return in.Action == ActionUpdate && in.RoleChange && !in.Requester.Role.Elevated()
		},
		allow: false,
	},
	{
		name: "elevated role may act on any record",
		applies: func(in Input) bool {
			return in.Requester.Role.Elevated()
		},
		allow: true,
	},
	{
		name: "owner may update own non-role fields",
		applies: func(in Input) bool {
			return in.Action == ActionUpdate && in.targetsSelf()
		},
		allow: true,
	},
	{
		name: "owner may delete themself",
		applies: func(in Input) bool {
			return in.Action == ActionDelete && in.targetsSelf()
		},
		allow: true,
	},
}

// CanPerform reports whether the requester may perform the action described
// by in. Pure function, no side effects; unmatched inputs are denied.
func CanPerform(in Input) bool {
	for _, r := range rules {
		if r.applies(in) {
			return r.allow
		}
	}
	return false
}
