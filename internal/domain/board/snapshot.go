package board

import (
	"fmt"
	"slices"
)

// Clone returns a deep copy that shares no mutable state with b.
func (b *Board) Clone() *Board {
	out := &Board{
		id:        b.id,
		name:      b.name,
		createdAt: b.createdAt,
		columns:   make([]*column, 0, len(b.columns)),
		members:   make([]*member, 0, len(b.members)),
	}
	for _, c := range b.columns {
		cc := *c
		cc.cards = make([]*card, 0, len(c.cards))
		for _, cd := range c.cards {
			copied := *cd
			cc.cards = append(cc.cards, &copied)
		}
		out.columns = append(out.columns, &cc)
	}
	for _, m := range b.members {
		copied := *m
		out.members = append(out.members, &copied)
	}
	return out
}

// Rehydrate rebuilds an aggregate from a stored view. Every value is
// revalidated and every aggregate invariant is checked; a view that violates
// any of them is rejected with an error wrapping ErrSnapshotInvalid and the
// specific cause. Columns and cards may arrive in any slice order; they are
// arranged by their Order fields.
func Rehydrate(v BoardView) (*Board, error) {
	if err := validateView(v); err != nil {
		return nil, err
	}

	name, _ := NewBoardName(v.Name)
	b := &Board{
		id:        v.ID,
		name:      name,
		createdAt: v.CreatedAt,
		columns:   make([]*column, 0, len(v.Columns)),
		members:   make([]*member, 0, len(v.Members)),
	}

	for _, cv := range sortedColumns(v.Columns) {
		colName, _ := NewColumnName(cv.Name)
		limit, _ := optionalWipLimit(cv.WipLimit)
		col := &column{
			id:    cv.ID,
			name:  colName,
			order: OrderIndex{value: cv.Order},
			wip:   limit,
			cards: make([]*card, 0, len(cv.Cards)),
		}
		for _, kv := range sortedCards(cv.Cards) {
			title, _ := NewCardTitle(kv.Title)
			desc, _ := NewCardDescription(kv.Description)
			col.cards = append(col.cards, &card{
				id:          kv.ID,
				title:       title,
				description: desc,
				order:       OrderIndex{value: kv.Order},
				createdAt:   kv.CreatedAt,
				archived:    kv.Archived,
			})
		}
		b.columns = append(b.columns, col)
	}

	for _, mv := range v.Members {
		b.members = append(b.members, &member{userID: mv.UserID, role: mv.Role, joinedAt: mv.JoinedAt})
	}
	return b, nil
}

// validateView checks a view against every aggregate invariant.
func validateView(v BoardView) error {
	if _, err := NewBoardName(v.Name); err != nil {
		return invalid(err, "board name")
	}

	columns := sortedColumns(v.Columns)
	seenCards := make(map[CardID]bool)
	for i, cv := range columns {
		if cv.Order != i {
			return invalid(ErrColumnOrderInvalid, "column %s has order %d, want %d", cv.ID, cv.Order, i)
		}
		name, err := NewColumnName(cv.Name)
		if err != nil {
			return invalid(err, "column %s name", cv.ID)
		}
		for _, other := range columns[:i] {
			otherName, _ := NewColumnName(other.Name)
			if name.sameAs(otherName) {
				return invalid(ErrColumnNameDuplicate, "column name %q", cv.Name)
			}
			if other.ID == cv.ID {
				return invalid(ErrSnapshotInvalid, "column id %s repeated", cv.ID)
			}
		}
		limit, err := optionalWipLimit(cv.WipLimit)
		if err != nil {
			return invalid(err, "column %s", cv.ID)
		}
		if limit.IsSet() && len(cv.Cards) > limit.Int() {
			return invalid(ErrWipLimitViolation, "column %s holds %d cards over limit %d", cv.ID, len(cv.Cards), limit.Int())
		}

		for j, kv := range sortedCards(cv.Cards) {
			if kv.Order != j {
				return invalid(ErrCardMoveInvalidOrder, "card %s has order %d, want %d", kv.ID, kv.Order, j)
			}
			if seenCards[kv.ID] {
				return invalid(ErrSnapshotInvalid, "card id %s repeated", kv.ID)
			}
			seenCards[kv.ID] = true
			if _, err := NewCardTitle(kv.Title); err != nil {
				return invalid(err, "card %s title", kv.ID)
			}
			if _, err := NewCardDescription(kv.Description); err != nil {
				return invalid(err, "card %s description", kv.ID)
			}
		}
	}

	owners := 0
	seenUsers := make(map[UserID]bool, len(v.Members))
	for _, mv := range v.Members {
		if !mv.Role.IsValid() {
			return invalid(ErrRoleInvalid, "member %s role %q", mv.UserID, mv.Role)
		}
		if seenUsers[mv.UserID] {
			return invalid(ErrMemberAlreadyExists, "member %s repeated", mv.UserID)
		}
		seenUsers[mv.UserID] = true
		if mv.Role == RoleOwner {
			owners++
		}
	}
	if owners == 0 {
		return invalid(ErrLastOwner, "no owner")
	}
	return nil
}

func invalid(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %w", ErrSnapshotInvalid, fmt.Sprintf(format, args...), cause)
}

func sortedColumns(in []ColumnView) []ColumnView {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b ColumnView) int { return a.Order - b.Order })
	return out
}

func sortedCards(in []CardView) []CardView {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b CardView) int { return a.Order - b.Order })
	return out
}
