package board

import (
	"slices"
	"testing"

	"github.com/jsamuelsen11/flowboard/internal/domain"
)

func newTestColumn(wip int) *column {
	c := &column{id: NewColumnID(), name: ColumnName{value: "Todo"}}
	if wip > 0 {
		c.wip = WipLimit{value: wip}
	}
	return c
}

func titlesOf(c *column) []string {
	out := make([]string, 0, len(c.cards))
	for _, cd := range c.cards {
		out = append(out, cd.title.String())
	}
	return out
}

func requireColumnDense(t *testing.T, c *column) {
	t.Helper()
	for i, cd := range c.cards {
		if cd.order.Int() != i {
			t.Fatalf("card %q order = %d, want %d", cd.title, cd.order.Int(), i)
		}
	}
}

func TestColumn_AddCard(t *testing.T) {
	t.Parallel()

	t.Run("appends with next order", func(t *testing.T) {
		t.Parallel()
		c := newTestColumn(0)
		for _, title := range []string{"A", "B", "C"} {
			if _, err := c.addCard(title, "", testTime); err != nil {
				t.Fatalf("addCard(%q) error = %v", title, err)
			}
		}
		if got := titlesOf(c); !slices.Equal(got, []string{"A", "B", "C"}) {
			t.Errorf("titles = %v, want [A B C]", got)
		}
		requireColumnDense(t, c)
	})

	t.Run("stamps creation time and trims", func(t *testing.T) {
		t.Parallel()
		c := newTestColumn(0)
		cd, err := c.addCard("  Task ", "  body  ", testTime)
		if err != nil {
			t.Fatalf("addCard() error = %v", err)
		}
		if cd.title.String() != "Task" || cd.description.String() != "body" {
			t.Errorf("card = %q/%q, want Task/body", cd.title, cd.description)
		}
		if !cd.createdAt.Equal(testTime) {
			t.Errorf("createdAt = %v, want %v", cd.createdAt, testTime)
		}
		if cd.archived {
			t.Error("new card archived = true, want false")
		}
	})

	t.Run("rejects at WIP limit", func(t *testing.T) {
		t.Parallel()
		c := newTestColumn(1)
		if _, err := c.addCard("A", "", testTime); err != nil {
			t.Fatalf("addCard(A) error = %v", err)
		}
		_, err := c.addCard("B", "", testTime)
		requireCode(t, err, ErrWipLimitViolation)
		if len(c.cards) != 1 {
			t.Errorf("len(cards) = %d, want 1", len(c.cards))
		}
	})

	t.Run("reports title and description failures together", func(t *testing.T) {
		t.Parallel()
		c := newTestColumn(0)
		long := make([]byte, MaxCardDescriptionLength+1)
		for i := range long {
			long[i] = 'x'
		}
		_, err := c.addCard("", string(long), testTime)
		codes := domain.Codes(err)
		want := []string{ErrCardTitleEmpty.Code, ErrCardDescriptionTooLong.Code}
		if !slices.Equal(codes, want) {
			t.Errorf("Codes() = %v, want %v", codes, want)
		}
		if len(c.cards) != 0 {
			t.Errorf("len(cards) = %d, want 0", len(c.cards))
		}
	})
}

func TestColumn_SetWipLimit(t *testing.T) {
	t.Parallel()

	c := newTestColumn(0)
	for _, title := range []string{"A", "B"} {
		if _, err := c.addCard(title, "", testTime); err != nil {
			t.Fatalf("addCard() error = %v", err)
		}
	}

	requireCode(t, c.setWipLimit(intPtr(0)), ErrWipLimitInvalid)
	requireCode(t, c.setWipLimit(intPtr(-1)), ErrWipLimitInvalid)
	requireCode(t, c.setWipLimit(intPtr(1)), ErrWipLimitViolation)
	if c.wip.IsSet() {
		t.Fatal("limit set after failed calls")
	}

	if err := c.setWipLimit(intPtr(2)); err != nil {
		t.Fatalf("setWipLimit(2) error = %v", err)
	}
	if c.wip.Int() != 2 {
		t.Errorf("wip = %d, want 2", c.wip.Int())
	}
	if err := c.setWipLimit(nil); err != nil {
		t.Fatalf("setWipLimit(nil) error = %v", err)
	}
	if c.wip.IsSet() {
		t.Error("wip still set after clearing")
	}
}

func TestColumn_ReorderCard(t *testing.T) {
	t.Parallel()

	build := func(t *testing.T) (*column, map[string]CardID) {
		t.Helper()
		c := newTestColumn(0)
		ids := make(map[string]CardID)
		for _, title := range []string{"X", "Y", "Z"} {
			cd, err := c.addCard(title, "", testTime)
			if err != nil {
				t.Fatalf("addCard() error = %v", err)
			}
			ids[title] = cd.id
		}
		return c, ids
	}

	tests := []struct {
		name     string
		card     string
		newOrder int
		want     []string
		wantErr  *domain.Error
	}{
		{name: "last to first", card: "Z", newOrder: 0, want: []string{"Z", "X", "Y"}},
		{name: "first to last", card: "X", newOrder: 2, want: []string{"Y", "Z", "X"}},
		{name: "middle to first", card: "Y", newOrder: 0, want: []string{"Y", "X", "Z"}},
		{name: "unchanged", card: "Y", newOrder: 1, want: []string{"X", "Y", "Z"}},
		{name: "negative order", card: "X", newOrder: -1, wantErr: ErrCardMoveInvalidOrder},
		{name: "order past end", card: "X", newOrder: 3, wantErr: ErrCardMoveInvalidOrder},
		{name: "unknown card", card: "", newOrder: 0, wantErr: ErrCardNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, ids := build(t)
			id, ok := ids[tt.card]
			if !ok {
				id = NewCardID()
			}
			err := c.reorderCard(id, tt.newOrder)
			if tt.wantErr != nil {
				requireCode(t, err, tt.wantErr)
				if got := titlesOf(c); !slices.Equal(got, []string{"X", "Y", "Z"}) {
					t.Errorf("titles after failure = %v, want unchanged", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("reorderCard() error = %v", err)
			}
			if got := titlesOf(c); !slices.Equal(got, tt.want) {
				t.Errorf("titles = %v, want %v", got, tt.want)
			}
			requireColumnDense(t, c)
		})
	}
}

func TestColumn_InsertAndRemove(t *testing.T) {
	t.Parallel()

	c := newTestColumn(0)
	var ids []CardID
	for _, title := range []string{"A", "B", "C"} {
		cd, err := c.addCard(title, "", testTime)
		if err != nil {
			t.Fatalf("addCard() error = %v", err)
		}
		ids = append(ids, cd.id)
	}

	removed := c.removeCard(ids[0])
	if removed == nil || removed.title.String() != "A" {
		t.Fatalf("removeCard(A) = %v, want card A", removed)
	}
	if got := titlesOf(c); !slices.Equal(got, []string{"B", "C"}) {
		t.Errorf("titles = %v, want [B C]", got)
	}
	requireColumnDense(t, c)

	if c.removeCard(ids[0]) != nil {
		t.Error("removeCard(already removed) returned a card")
	}
	if c.containsCard(ids[0]) {
		t.Error("containsCard(removed) = true")
	}

	c.insertCardAt(removed, 99)
	if got := titlesOf(c); !slices.Equal(got, []string{"B", "C", "A"}) {
		t.Errorf("titles after clamped insert = %v, want [B C A]", got)
	}
	c.insertCardAt(c.removeCard(ids[0]), -5)
	if got := titlesOf(c); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("titles after negative insert = %v, want [A B C]", got)
	}
	requireColumnDense(t, c)
}

func TestCard_ArchiveRestoreIdempotent(t *testing.T) {
	t.Parallel()

	cd := &card{}
	cd.archive()
	cd.archive()
	if !cd.archived {
		t.Fatal("archived = false after archive")
	}
	cd.restore()
	cd.restore()
	if cd.archived {
		t.Fatal("archived = true after restore")
	}
}
