package board

import "time"

// CardView is a read-only copy of a card.
type CardView struct {
	ID          CardID
	Title       string
	Description string
	Order       int
	CreatedAt   time.Time
	Archived    bool
}

// ColumnView is a read-only copy of a column with its cards in order.
type ColumnView struct {
	ID       ColumnID
	Name     string
	Order    int
	WipLimit *int
	Cards    []CardView
}

// ActiveCards returns the cards that are not archived, in order.
func (v ColumnView) ActiveCards() []CardView {
	out := make([]CardView, 0, len(v.Cards))
	for _, c := range v.Cards {
		if !c.Archived {
			out = append(out, c)
		}
	}
	return out
}

// MemberView is a read-only copy of a membership entry.
type MemberView struct {
	UserID   UserID
	Role     Role
	JoinedAt time.Time
}

// BoardView is a read-only copy of the whole aggregate. It is what
// persistence stores and what query callers project, sort and page.
type BoardView struct {
	ID        BoardID
	Name      string
	CreatedAt time.Time
	Columns   []ColumnView
	Members   []MemberView
}

// HasMember reports whether user appears in the view's membership.
func (v BoardView) HasMember(user UserID) bool {
	for _, m := range v.Members {
		if m.UserID == user {
			return true
		}
	}
	return false
}

// View returns a deep copy of the board. Columns and cards are in order;
// members are in join order.
func (b *Board) View() BoardView {
	return BoardView{
		ID:        b.id,
		Name:      b.name.String(),
		CreatedAt: b.createdAt,
		Columns:   b.Columns(),
		Members:   b.Members(),
	}
}

// Columns returns copies of the columns in order.
func (b *Board) Columns() []ColumnView {
	out := make([]ColumnView, 0, len(b.columns))
	for _, c := range b.columns {
		out = append(out, c.view())
	}
	return out
}

// Column returns a copy of one column.
func (b *Board) Column(id ColumnID) (ColumnView, bool) {
	c := b.findColumn(id)
	if c == nil {
		return ColumnView{}, false
	}
	return c.view(), true
}

// Members returns copies of the membership entries in join order.
func (b *Board) Members() []MemberView {
	out := make([]MemberView, 0, len(b.members))
	for _, m := range b.members {
		out = append(out, m.view())
	}
	return out
}

// FindCard locates a card anywhere on the board and reports its column.
func (b *Board) FindCard(id CardID) (CardView, ColumnID, bool) {
	for _, c := range b.columns {
		if cd, _ := c.findCard(id); cd != nil {
			return cd.view(), c.id, true
		}
	}
	return CardView{}, ColumnID{}, false
}
