package board

import "time"

// card is one unit of work. Field changes are applied only after the owning
// board has validated them, so nothing here can fail.
type card struct {
	id          CardID
	title       CardTitle
	description CardDescription
	order       OrderIndex
	createdAt   time.Time
	archived    bool
}

func (c *card) rename(title CardTitle)                 { c.title = title }
func (c *card) changeDescription(desc CardDescription) { c.description = desc }
func (c *card) setOrder(order OrderIndex)              { c.order = order }
func (c *card) archive()                               { c.archived = true }
func (c *card) restore()                               { c.archived = false }

func (c *card) view() CardView {
	return CardView{
		ID:          c.id,
		Title:       c.title.String(),
		Description: c.description.String(),
		Order:       c.order.Int(),
		CreatedAt:   c.createdAt,
		Archived:    c.archived,
	}
}
