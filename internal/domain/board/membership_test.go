package board

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/flowboard/internal/domain"
)

func TestBoard_AddMember(t *testing.T) {
	t.Parallel()

	b, owner := newTestBoard(t)
	user := NewUserID()

	if err := b.AddMember(user, RoleMember, owner, testClock); err != nil {
		t.Fatalf("AddMember() error = %v", err)
	}
	if role, ok := b.RoleOf(user); !ok || role != RoleMember {
		t.Errorf("RoleOf() = %q, %v; want member, true", role, ok)
	}
	if got := len(b.Members()); got != 2 {
		t.Errorf("len(Members()) = %d, want 2", got)
	}

	before := b.View()
	requireCode(t, b.AddMember(user, RoleOwner, owner, testClock), ErrMemberAlreadyExists)
	requireCode(t, b.AddMember(NewUserID(), Role("admin"), owner, testClock), ErrRoleInvalid)
	requireCode(t, b.AddMember(NewUserID(), RoleMember, user, testClock), ErrOwnerRequired)
	requireUnchanged(t, b, before)
}

func TestBoard_RemoveMember(t *testing.T) {
	t.Parallel()

	t.Run("removes a member", func(t *testing.T) {
		t.Parallel()
		b, owner := newTestBoard(t)
		user := NewUserID()
		if err := b.AddMember(user, RoleMember, owner, testClock); err != nil {
			t.Fatalf("AddMember() error = %v", err)
		}
		if err := b.RemoveMember(user, owner); err != nil {
			t.Fatalf("RemoveMember() error = %v", err)
		}
		if b.HasMember(user) {
			t.Error("user still a member")
		}
	})

	t.Run("unknown member", func(t *testing.T) {
		t.Parallel()
		b, owner := newTestBoard(t)
		err := b.RemoveMember(NewUserID(), owner)
		requireCode(t, err, ErrMemberNotFound)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("errors.Is(err, ErrNotFound) = false, got %v", err)
		}
	})

	t.Run("last owner stays", func(t *testing.T) {
		t.Parallel()
		b, owner := newTestBoard(t)
		before := b.View()
		requireCode(t, b.RemoveMember(owner, owner), ErrLastOwner)
		requireUnchanged(t, b, before)
	})

	t.Run("one of two owners may leave", func(t *testing.T) {
		t.Parallel()
		b, owner := newTestBoard(t)
		second := NewUserID()
		if err := b.AddMember(second, RoleOwner, owner, testClock); err != nil {
			t.Fatalf("AddMember() error = %v", err)
		}
		if err := b.RemoveMember(owner, second); err != nil {
			t.Fatalf("RemoveMember() error = %v", err)
		}
		requireCode(t, b.RemoveMember(second, second), ErrLastOwner)
		requireDense(t, b)
	})

	t.Run("members cannot remove", func(t *testing.T) {
		t.Parallel()
		b, owner := newTestBoard(t)
		user := NewUserID()
		if err := b.AddMember(user, RoleMember, owner, testClock); err != nil {
			t.Fatalf("AddMember() error = %v", err)
		}
		requireCode(t, b.RemoveMember(user, user), ErrOwnerRequired)
	})
}

func TestBoard_ChangeRole(t *testing.T) {
	t.Parallel()

	t.Run("sole owner cannot demote self", func(t *testing.T) {
		t.Parallel()
		b, owner := newTestBoard(t)
		before := b.View()

		requireCode(t, b.ChangeRole(owner, RoleMember, owner), ErrLastOwner)
		if role, _ := b.RoleOf(owner); role != RoleOwner {
			t.Errorf("RoleOf(owner) = %q, want owner", role)
		}
		requireUnchanged(t, b, before)
	})

	t.Run("promote then demote", func(t *testing.T) {
		t.Parallel()
		b, owner := newTestBoard(t)
		user := NewUserID()
		if err := b.AddMember(user, RoleMember, owner, testClock); err != nil {
			t.Fatalf("AddMember() error = %v", err)
		}
		if err := b.ChangeRole(user, RoleOwner, owner); err != nil {
			t.Fatalf("ChangeRole(owner) error = %v", err)
		}
		if err := b.ChangeRole(owner, RoleMember, user); err != nil {
			t.Fatalf("ChangeRole(member) error = %v", err)
		}
		if b.IsOwner(owner) || !b.IsOwner(user) {
			t.Error("ownership did not transfer")
		}
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		t.Parallel()
		b, owner := newTestBoard(t)
		before := b.View()
		if err := b.ChangeRole(owner, RoleOwner, owner); err != nil {
			t.Fatalf("ChangeRole(same) error = %v", err)
		}
		requireUnchanged(t, b, before)
	})

	t.Run("rejections", func(t *testing.T) {
		t.Parallel()
		b, owner := newTestBoard(t)
		user := NewUserID()
		if err := b.AddMember(user, RoleMember, owner, testClock); err != nil {
			t.Fatalf("AddMember() error = %v", err)
		}
		before := b.View()
		requireCode(t, b.ChangeRole(NewUserID(), RoleOwner, owner), ErrMemberNotFound)
		requireCode(t, b.ChangeRole(user, Role(""), owner), ErrRoleInvalid)
		requireCode(t, b.ChangeRole(user, RoleOwner, user), ErrOwnerRequired)
		requireUnchanged(t, b, before)
	})
}

func TestBoard_PermissionGates(t *testing.T) {
	t.Parallel()

	b, owner := newTestBoard(t)
	col := mustAddColumn(t, b, owner, "Todo", nil)
	cd := mustAddCard(t, b, owner, col.ID, "A")
	stranger := NewUserID()
	before := b.View()

	calls := map[string]error{
		"Rename":                b.Rename("X", stranger),
		"AddMember":             b.AddMember(NewUserID(), RoleMember, stranger, testClock),
		"RemoveMember":          b.RemoveMember(owner, stranger),
		"ChangeRole":            b.ChangeRole(owner, RoleMember, stranger),
		"RenameColumn":          b.RenameColumn(col.ID, "X", stranger),
		"ReorderColumn":         b.ReorderColumn(col.ID, 0, stranger),
		"SetColumnWipLimit":     b.SetColumnWipLimit(col.ID, intPtr(3), stranger),
		"MoveCard":              b.MoveCard(cd.ID, col.ID, col.ID, 0, stranger),
		"ReorderCard":           b.ReorderCard(col.ID, cd.ID, 0, stranger),
		"ArchiveCard":           b.ArchiveCard(col.ID, cd.ID, stranger),
		"UnarchiveCard":         b.UnarchiveCard(col.ID, cd.ID, stranger),
		"RenameCard":            b.RenameCard(col.ID, cd.ID, "X", stranger),
		"ChangeCardDescription": b.ChangeCardDescription(col.ID, cd.ID, "X", stranger),
		"DeleteCard":            b.DeleteCard(col.ID, cd.ID, stranger),
	}
	for name, err := range calls {
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("%s() error = %v, want forbidden", name, err)
		}
	}
	requireUnchanged(t, b, before)
}
