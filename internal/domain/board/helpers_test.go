package board

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jsamuelsen11/flowboard/internal/domain"
)

var (
	testTime  = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	testClock = domain.FixedClock{T: testTime}
)

func intPtr(v int) *int { return &v }

// newTestBoard creates a board owned by a fresh user.
func newTestBoard(t *testing.T) (*Board, UserID) {
	t.Helper()
	owner := NewUserID()
	b, err := New("Sprint 1", owner, testClock)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return b, owner
}

func mustAddColumn(t *testing.T, b *Board, actor UserID, name string, wip *int) ColumnView {
	t.Helper()
	col, err := b.AddColumn(name, actor, wip)
	if err != nil {
		t.Fatalf("AddColumn(%q) error = %v", name, err)
	}
	return col
}

func mustAddCard(t *testing.T, b *Board, actor UserID, columnID ColumnID, title string) CardView {
	t.Helper()
	cd, err := b.AddCard(columnID, title, "", actor, testClock)
	if err != nil {
		t.Fatalf("AddCard(%q) error = %v", title, err)
	}
	return cd
}

// requireCode asserts err carries the coded error want.
func requireCode(t *testing.T, err error, want *domain.Error) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want %s", want.Code)
	}
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want code %s", err, want.Code)
	}
}

// requireDense asserts the board passes every aggregate invariant.
func requireDense(t *testing.T, b *Board) {
	t.Helper()
	if err := validateView(b.View()); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

// requireUnchanged asserts the board's projection equals before.
func requireUnchanged(t *testing.T, b *Board, before BoardView) {
	t.Helper()
	if after := b.View(); !reflect.DeepEqual(before, after) {
		t.Fatalf("board changed after failed call:\nbefore %+v\nafter  %+v", before, after)
	}
}

func cardTitles(t *testing.T, b *Board, columnID ColumnID) []string {
	t.Helper()
	col, ok := b.Column(columnID)
	if !ok {
		t.Fatalf("Column(%s) not found", columnID)
	}
	titles := make([]string, 0, len(col.Cards))
	for i, cd := range col.Cards {
		if cd.Order != i {
			t.Errorf("card %q order = %d, want %d", cd.Title, cd.Order, i)
		}
		titles = append(titles, cd.Title)
	}
	return titles
}
