package board

import (
	"slices"
	"time"

	"github.com/jsamuelsen11/flowboard/internal/domain"
)

// column is an ordered container of cards. It keeps its own cards densely
// ordered and enforces its WIP limit; name uniqueness and column ordering
// belong to the board.
type column struct {
	id    ColumnID
	name  ColumnName
	order OrderIndex
	wip   WipLimit
	cards []*card
}

func (c *column) rename(name ColumnName)    { c.name = name }
func (c *column) setOrder(order OrderIndex) { c.order = order }

// atLimit reports whether another card would exceed the WIP limit.
func (c *column) atLimit() bool {
	return c.wip.IsSet() && len(c.cards) >= c.wip.Int()
}

// addCard validates the title and description together and appends a new
// card at the end of the column.
func (c *column) addCard(rawTitle, rawDescription string, createdAt time.Time) (*card, error) {
	if c.atLimit() {
		return nil, ErrWipLimitViolation
	}

	title, titleErr := NewCardTitle(rawTitle)
	desc, descErr := NewCardDescription(rawDescription)
	if err := domain.Join(titleErr, descErr); err != nil {
		return nil, err
	}

	cd := &card{
		id:          NewCardID(),
		title:       title,
		description: desc,
		order:       OrderIndex{value: len(c.cards)},
		createdAt:   createdAt,
	}
	c.cards = append(c.cards, cd)
	return cd, nil
}

// setWipLimit replaces the limit. Nil clears it. A limit below the current
// card count is rejected.
func (c *column) setWipLimit(raw *int) error {
	limit, err := optionalWipLimit(raw)
	if err != nil {
		return err
	}
	if limit.IsSet() && limit.Int() < len(c.cards) {
		return ErrWipLimitViolation
	}
	c.wip = limit
	return nil
}

// findCard returns the card and its slice position, or nil and -1.
func (c *column) findCard(id CardID) (*card, int) {
	for i, cd := range c.cards {
		if cd.id == id {
			return cd, i
		}
	}
	return nil, -1
}

func (c *column) containsCard(id CardID) bool {
	_, i := c.findCard(id)
	return i >= 0
}

// removeCard drops the card and renumbers the rest.
func (c *column) removeCard(id CardID) *card {
	cd, i := c.findCard(id)
	if cd == nil {
		return nil
	}
	c.cards = slices.Delete(c.cards, i, i+1)
	c.renumber()
	return cd
}

// insertCardAt places cd at index, clamped to [0, len], and renumbers.
func (c *column) insertCardAt(cd *card, index int) {
	index = max(0, min(index, len(c.cards)))
	c.cards = slices.Insert(c.cards, index, cd)
	c.renumber()
}

// reorderCard moves a card to newOrder within this column.
func (c *column) reorderCard(id CardID, newOrder int) error {
	cd, current := c.findCard(id)
	if cd == nil {
		return ErrCardNotFound
	}
	if newOrder < 0 || newOrder >= len(c.cards) {
		return ErrCardMoveInvalidOrder
	}
	if current == newOrder {
		return nil
	}

	c.cards = slices.Delete(c.cards, current, current+1)
	c.cards = slices.Insert(c.cards, newOrder, cd)
	c.renumber()
	return nil
}

func (c *column) renumber() {
	for i, cd := range c.cards {
		cd.setOrder(OrderIndex{value: i})
	}
}

func (c *column) view() ColumnView {
	cards := make([]CardView, 0, len(c.cards))
	for _, cd := range c.cards {
		cards = append(cards, cd.view())
	}
	return ColumnView{
		ID:       c.id,
		Name:     c.name.String(),
		Order:    c.order.Int(),
		WipLimit: c.wip.Ptr(),
		Cards:    cards,
	}
}
