// Package board implements the Board aggregate: a board owns its ordered
// columns and its membership roster, and each column owns its ordered cards.
//
// The *Board is the only mutation entry point. Every method checks the
// actor's permission, validates its inputs and capacity rules, and only then
// mutates, so a failed call leaves the aggregate exactly as it was. After
// every successful call the columns of the board, and the cards of every
// column, carry dense zero-based order indexes.
//
// A *Board is not safe for concurrent use. Callers load one, apply a single
// command and hand it back to persistence.
package board

import (
	"slices"
	"time"

	"github.com/jsamuelsen11/flowboard/internal/domain"
)

// Board is the aggregate root.
type Board struct {
	id        BoardID
	name      BoardName
	createdAt time.Time
	columns   []*column
	members   []*member
}

// New creates a board named rawName with creator seeded as its sole owner.
func New(rawName string, creator UserID, clock domain.Clock) (*Board, error) {
	name, err := NewBoardName(rawName)
	if err != nil {
		return nil, err
	}

	now := clock.Now()
	return &Board{
		id:        NewBoardID(),
		name:      name,
		createdAt: now,
		members: []*member{
			{userID: creator, role: RoleOwner, joinedAt: now},
		},
	}, nil
}

// ID returns the board identifier.
func (b *Board) ID() BoardID { return b.id }

// Name returns the board name.
func (b *Board) Name() string { return b.name.String() }

// CreatedAt returns the creation timestamp.
func (b *Board) CreatedAt() time.Time { return b.createdAt }

// Rename changes the board name. Owner only; renaming to the current name is
// a successful no-op.
func (b *Board) Rename(rawName string, actor UserID) error {
	if err := b.EnsureOwner(actor); err != nil {
		return err
	}
	name, err := NewBoardName(rawName)
	if err != nil {
		return err
	}
	if name == b.name {
		return nil
	}
	b.name = name
	return nil
}

// --- Membership ---

// HasMember reports whether user belongs to the board in any role.
func (b *Board) HasMember(user UserID) bool {
	return b.findMember(user) != nil
}

// IsOwner reports whether user is an owner of the board.
func (b *Board) IsOwner(user UserID) bool {
	m := b.findMember(user)
	return m != nil && m.role == RoleOwner
}

// RoleOf returns the user's role, if a member.
func (b *Board) RoleOf(user UserID) (Role, bool) {
	m := b.findMember(user)
	if m == nil {
		return "", false
	}
	return m.role, true
}

// EnsureOwner fails with ErrOwnerRequired unless actor is an owner.
func (b *Board) EnsureOwner(actor UserID) error {
	if !b.IsOwner(actor) {
		return ErrOwnerRequired
	}
	return nil
}

// EnsureCollaborator fails with ErrMemberRequired unless actor is a member.
func (b *Board) EnsureCollaborator(actor UserID) error {
	if !b.HasMember(actor) {
		return ErrMemberRequired
	}
	return nil
}

// AddMember adds user with role. Owner only.
func (b *Board) AddMember(user UserID, role Role, actor UserID, clock domain.Clock) error {
	if err := b.EnsureOwner(actor); err != nil {
		return err
	}
	if !role.IsValid() {
		return ErrRoleInvalid
	}
	if b.HasMember(user) {
		return ErrMemberAlreadyExists
	}

	b.members = append(b.members, &member{userID: user, role: role, joinedAt: clock.Now()})
	return nil
}

// RemoveMember drops user from the board. Owner only. The last owner cannot
// be removed.
func (b *Board) RemoveMember(user UserID, actor UserID) error {
	if err := b.EnsureOwner(actor); err != nil {
		return err
	}
	i := slices.IndexFunc(b.members, func(m *member) bool { return m.userID == user })
	if i < 0 {
		return ErrMemberNotFound
	}
	if b.members[i].role == RoleOwner && b.ownerCount() == 1 {
		return ErrLastOwner
	}

	b.members = slices.Delete(b.members, i, i+1)
	return nil
}

// ChangeRole sets user's role. Owner only. Demoting the last owner fails;
// assigning the current role is a successful no-op.
func (b *Board) ChangeRole(user UserID, role Role, actor UserID) error {
	if err := b.EnsureOwner(actor); err != nil {
		return err
	}
	if !role.IsValid() {
		return ErrRoleInvalid
	}
	m := b.findMember(user)
	if m == nil {
		return ErrMemberNotFound
	}
	if m.role == role {
		return nil
	}
	if m.role == RoleOwner && b.ownerCount() == 1 {
		return ErrLastOwner
	}

	m.role = role
	return nil
}

func (b *Board) findMember(user UserID) *member {
	for _, m := range b.members {
		if m.userID == user {
			return m
		}
	}
	return nil
}

func (b *Board) ownerCount() int {
	n := 0
	for _, m := range b.members {
		if m.role == RoleOwner {
			n++
		}
	}
	return n
}
