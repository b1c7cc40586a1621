package board

import "strings"

// Role is a member's standing on a board.
type Role string

const (
	// RoleMember may work on columns and cards.
	RoleMember Role = "member"
	// RoleOwner additionally governs the board name and membership.
	RoleOwner Role = "owner"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleOwner:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// ParseRole accepts a role name in any letter case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", ErrRoleInvalid
	}
	return r, nil
}
