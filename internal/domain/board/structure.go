package board

import (
	"slices"

	"github.com/jsamuelsen11/flowboard/internal/domain"
)

// --- Columns ---

// AddColumn appends a column. Names are unique per board ignoring case.
// A nil wipLimit means unlimited.
func (b *Board) AddColumn(rawName string, actor UserID, wipLimit *int) (ColumnView, error) {
	if err := b.EnsureCollaborator(actor); err != nil {
		return ColumnView{}, err
	}
	name, err := NewColumnName(rawName)
	if err != nil {
		return ColumnView{}, err
	}
	if b.nameTaken(name, nil) {
		return ColumnView{}, ErrColumnNameDuplicate
	}
	limit, err := optionalWipLimit(wipLimit)
	if err != nil {
		return ColumnView{}, err
	}

	col := &column{
		id:    NewColumnID(),
		name:  name,
		order: OrderIndex{value: len(b.columns)},
		wip:   limit,
	}
	b.columns = append(b.columns, col)
	return col.view(), nil
}

// RenameColumn renames a column, keeping names unique ignoring case. Renaming
// to the current name is a successful no-op.
func (b *Board) RenameColumn(id ColumnID, rawName string, actor UserID) error {
	if err := b.EnsureCollaborator(actor); err != nil {
		return err
	}
	col := b.findColumn(id)
	if col == nil {
		return ErrColumnNotFound
	}
	name, err := NewColumnName(rawName)
	if err != nil {
		return err
	}
	if b.nameTaken(name, col) {
		return ErrColumnNameDuplicate
	}
	if name == col.name {
		return nil
	}

	col.rename(name)
	return nil
}

// ReorderColumn moves a column to newOrder and renumbers every column.
func (b *Board) ReorderColumn(id ColumnID, newOrder int, actor UserID) error {
	if err := b.EnsureCollaborator(actor); err != nil {
		return err
	}
	if newOrder < 0 || newOrder >= len(b.columns) {
		return ErrColumnOrderInvalid
	}
	current := slices.IndexFunc(b.columns, func(c *column) bool { return c.id == id })
	if current < 0 {
		return ErrColumnNotFound
	}
	if current == newOrder {
		return nil
	}

	col := b.columns[current]
	b.columns = slices.Delete(b.columns, current, current+1)
	b.columns = slices.Insert(b.columns, newOrder, col)
	for i, c := range b.columns {
		c.setOrder(OrderIndex{value: i})
	}
	return nil
}

// SetColumnWipLimit replaces a column's WIP limit; nil clears it.
func (b *Board) SetColumnWipLimit(id ColumnID, value *int, actor UserID) error {
	if err := b.EnsureCollaborator(actor); err != nil {
		return err
	}
	col := b.findColumn(id)
	if col == nil {
		return ErrColumnNotFound
	}
	return col.setWipLimit(value)
}

// --- Cards ---

// AddCard appends a card to the column, stamped with the clock's time.
func (b *Board) AddCard(columnID ColumnID, title, description string, actor UserID, clock domain.Clock) (CardView, error) {
	if err := b.EnsureCollaborator(actor); err != nil {
		return CardView{}, err
	}
	col := b.findColumn(columnID)
	if col == nil {
		return CardView{}, ErrColumnNotFound
	}
	cd, err := col.addCard(title, description, clock.Now())
	if err != nil {
		return CardView{}, err
	}
	return cd.view(), nil
}

// MoveCard moves a card from one column to targetOrder in another (or the
// same) column. All checks run before either column is touched, so on
// failure both columns are unchanged; on success the card is in exactly one
// column and both columns are renumbered.
//
// targetOrder may equal the destination's current card count (append). The
// destination's WIP limit is only consulted when the columns differ.
func (b *Board) MoveCard(cardID CardID, fromColumnID, toColumnID ColumnID, targetOrder int, actor UserID) error {
	if err := b.EnsureCollaborator(actor); err != nil {
		return err
	}
	from := b.findColumn(fromColumnID)
	to := b.findColumn(toColumnID)
	if from == nil || to == nil {
		return ErrColumnNotFound
	}
	if !from.containsCard(cardID) {
		return ErrCardNotFound
	}
	if targetOrder < 0 || targetOrder > len(to.cards) {
		return ErrCardMoveInvalidOrder
	}
	if from != to && to.atLimit() {
		return ErrWipLimitViolation
	}

	cd := from.removeCard(cardID)
	to.insertCardAt(cd, min(targetOrder, len(to.cards)))
	return nil
}

// ReorderCard moves a card to newOrder within its column.
func (b *Board) ReorderCard(columnID ColumnID, cardID CardID, newOrder int, actor UserID) error {
	col, err := b.collaboratorColumn(columnID, actor)
	if err != nil {
		return err
	}
	return col.reorderCard(cardID, newOrder)
}

// ArchiveCard flags a card as archived. Archiving an archived card succeeds
// without change.
func (b *Board) ArchiveCard(columnID ColumnID, cardID CardID, actor UserID) error {
	cd, err := b.collaboratorCard(columnID, cardID, actor)
	if err != nil {
		return err
	}
	if cd.archived {
		return nil
	}
	cd.archive()
	return nil
}

// UnarchiveCard clears the archived flag. Restoring an active card succeeds
// without change.
func (b *Board) UnarchiveCard(columnID ColumnID, cardID CardID, actor UserID) error {
	cd, err := b.collaboratorCard(columnID, cardID, actor)
	if err != nil {
		return err
	}
	if !cd.archived {
		return nil
	}
	cd.restore()
	return nil
}

// RenameCard changes a card title. Same title is a successful no-op.
func (b *Board) RenameCard(columnID ColumnID, cardID CardID, rawTitle string, actor UserID) error {
	cd, err := b.collaboratorCard(columnID, cardID, actor)
	if err != nil {
		return err
	}
	title, err := NewCardTitle(rawTitle)
	if err != nil {
		return err
	}
	if title == cd.title {
		return nil
	}
	cd.rename(title)
	return nil
}

// ChangeCardDescription replaces a card description. Same text is a
// successful no-op.
func (b *Board) ChangeCardDescription(columnID ColumnID, cardID CardID, rawDescription string, actor UserID) error {
	cd, err := b.collaboratorCard(columnID, cardID, actor)
	if err != nil {
		return err
	}
	desc, err := NewCardDescription(rawDescription)
	if err != nil {
		return err
	}
	if desc == cd.description {
		return nil
	}
	cd.changeDescription(desc)
	return nil
}

// DeleteCard removes a card permanently and renumbers its column.
func (b *Board) DeleteCard(columnID ColumnID, cardID CardID, actor UserID) error {
	col, err := b.collaboratorColumn(columnID, actor)
	if err != nil {
		return err
	}
	if col.removeCard(cardID) == nil {
		return ErrCardNotFound
	}
	return nil
}

func (b *Board) collaboratorColumn(columnID ColumnID, actor UserID) (*column, error) {
	if err := b.EnsureCollaborator(actor); err != nil {
		return nil, err
	}
	col := b.findColumn(columnID)
	if col == nil {
		return nil, ErrColumnNotFound
	}
	return col, nil
}

func (b *Board) collaboratorCard(columnID ColumnID, cardID CardID, actor UserID) (*card, error) {
	col, err := b.collaboratorColumn(columnID, actor)
	if err != nil {
		return nil, err
	}
	cd, _ := col.findCard(cardID)
	if cd == nil {
		return nil, ErrCardNotFound
	}
	return cd, nil
}

func (b *Board) findColumn(id ColumnID) *column {
	for _, c := range b.columns {
		if c.id == id {
			return c
		}
	}
	return nil
}

// nameTaken reports whether another column already uses name. except is
// skipped so a column can keep or re-case its own name.
func (b *Board) nameTaken(name ColumnName, except *column) bool {
	for _, c := range b.columns {
		if c != except && c.name.sameAs(name) {
			return true
		}
	}
	return false
}
