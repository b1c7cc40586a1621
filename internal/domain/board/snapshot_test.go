package board

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/jsamuelsen11/flowboard/internal/domain"
)

func populatedBoard(t *testing.T) (*Board, UserID) {
	t.Helper()
	b, owner := newTestBoard(t)
	if err := b.AddMember(NewUserID(), RoleMember, owner, testClock); err != nil {
		t.Fatalf("AddMember() error = %v", err)
	}
	todo := mustAddColumn(t, b, owner, "Todo", intPtr(4))
	done := mustAddColumn(t, b, owner, "Done", nil)
	mustAddCard(t, b, owner, todo.ID, "A")
	archived := mustAddCard(t, b, owner, todo.ID, "B")
	mustAddCard(t, b, owner, done.ID, "C")
	if err := b.ArchiveCard(todo.ID, archived.ID, owner); err != nil {
		t.Fatalf("ArchiveCard() error = %v", err)
	}
	return b, owner
}

func TestRehydrate_RoundTrip(t *testing.T) {
	t.Parallel()

	b, _ := populatedBoard(t)
	view := b.View()

	restored, err := Rehydrate(view)
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}
	if got := restored.View(); !reflect.DeepEqual(got, view) {
		t.Errorf("Rehydrate().View() = %+v, want %+v", got, view)
	}
}

func TestRehydrate_SortsByOrder(t *testing.T) {
	t.Parallel()

	b, _ := populatedBoard(t)
	view := b.View()
	shuffled := b.View()
	slices.Reverse(shuffled.Columns)
	for i := range shuffled.Columns {
		slices.Reverse(shuffled.Columns[i].Cards)
	}

	restored, err := Rehydrate(shuffled)
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}
	if got := restored.View(); !reflect.DeepEqual(got, view) {
		t.Errorf("Rehydrate().View() = %+v, want %+v", got, view)
	}
}

func TestRehydrate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(v *BoardView)
		cause  *domain.Error
	}{
		{
			name:   "blank board name",
			mutate: func(v *BoardView) { v.Name = " " },
			cause:  ErrBoardNameEmpty,
		},
		{
			name:   "column order gap",
			mutate: func(v *BoardView) { v.Columns[1].Order = 2 },
			cause:  ErrColumnOrderInvalid,
		},
		{
			name:   "duplicate column name",
			mutate: func(v *BoardView) { v.Columns[1].Name = "TODO" },
			cause:  ErrColumnNameDuplicate,
		},
		{
			name:   "invalid WIP limit",
			mutate: func(v *BoardView) { v.Columns[1].WipLimit = intPtr(0) },
			cause:  ErrWipLimitInvalid,
		},
		{
			name:   "cards over WIP limit",
			mutate: func(v *BoardView) { v.Columns[0].WipLimit = intPtr(1) },
			cause:  ErrWipLimitViolation,
		},
		{
			name:   "duplicate card order",
			mutate: func(v *BoardView) { v.Columns[0].Cards[1].Order = 0 },
			cause:  ErrCardMoveInvalidOrder,
		},
		{
			name:   "card in two columns",
			mutate: func(v *BoardView) { v.Columns[1].Cards[0].ID = v.Columns[0].Cards[0].ID },
			cause:  ErrSnapshotInvalid,
		},
		{
			name:   "blank card title",
			mutate: func(v *BoardView) { v.Columns[1].Cards[0].Title = "" },
			cause:  ErrCardTitleEmpty,
		},
		{
			name:   "unknown role",
			mutate: func(v *BoardView) { v.Members[1].Role = "admin" },
			cause:  ErrRoleInvalid,
		},
		{
			name:   "repeated member",
			mutate: func(v *BoardView) { v.Members[1].UserID = v.Members[0].UserID },
			cause:  ErrMemberAlreadyExists,
		},
		{
			name:   "no owner",
			mutate: func(v *BoardView) { v.Members[0].Role = RoleMember },
			cause:  ErrLastOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, _ := populatedBoard(t)
			view := b.View()
			tt.mutate(&view)

			_, err := Rehydrate(view)
			if !errors.Is(err, ErrSnapshotInvalid) {
				t.Fatalf("Rehydrate() error = %v, want %s", err, ErrSnapshotInvalid.Code)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("Rehydrate() error = %v, want cause %s", err, tt.cause.Code)
			}
		})
	}
}

func TestBoard_Clone(t *testing.T) {
	t.Parallel()

	b, owner := populatedBoard(t)
	clone := b.Clone()
	if !reflect.DeepEqual(clone.View(), b.View()) {
		t.Fatal("Clone().View() differs from original")
	}

	before := b.View()
	cols := clone.Columns()
	mustAddCard(t, clone, owner, cols[1].ID, "D")
	if err := clone.RenameColumn(cols[0].ID, "Backlog", owner); err != nil {
		t.Fatalf("RenameColumn() error = %v", err)
	}
	if err := clone.Rename("Other", owner); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if err := clone.RemoveMember(clone.Members()[1].UserID, owner); err != nil {
		t.Fatalf("RemoveMember() error = %v", err)
	}

	requireUnchanged(t, b, before)
}
