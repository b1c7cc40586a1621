package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen11/flowboard/internal/domain/board"
)

func columnAttr(id board.ColumnID) attribute.KeyValue {
	return attribute.String("board.column_id", id.String())
}

func cardAttr(id board.CardID) attribute.KeyValue {
	return attribute.String("board.card_id", id.String())
}

// --- Columns ---

// AddColumn appends a column to the board.
func (s *BoardService) AddColumn(ctx context.Context, actor board.UserID, id board.BoardID, name string, wipLimit *int) (board.ColumnView, error) {
	var col board.ColumnView
	err := s.mutate(ctx, "AddColumn", actor, id, func(b *board.Board) error {
		var err error
		col, err = b.AddColumn(name, actor, wipLimit)
		return err
	})
	return col, err
}

// RenameColumn renames a column.
func (s *BoardService) RenameColumn(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, name string) error {
	return s.mutate(ctx, "RenameColumn", actor, id, func(b *board.Board) error {
		return b.RenameColumn(columnID, name, actor)
	}, columnAttr(columnID))
}

// ReorderColumn moves a column to newOrder.
func (s *BoardService) ReorderColumn(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, newOrder int) error {
	return s.mutate(ctx, "ReorderColumn", actor, id, func(b *board.Board) error {
		return b.ReorderColumn(columnID, newOrder, actor)
	}, columnAttr(columnID), attribute.Int("board.order", newOrder))
}

// SetColumnWipLimit replaces a column's WIP limit.
func (s *BoardService) SetColumnWipLimit(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, wipLimit *int) error {
	return s.mutate(ctx, "SetColumnWipLimit", actor, id, func(b *board.Board) error {
		return b.SetColumnWipLimit(columnID, wipLimit, actor)
	}, columnAttr(columnID))
}

// ListColumns returns the board's columns in order.
func (s *BoardService) ListColumns(ctx context.Context, actor board.UserID, id board.BoardID) ([]board.ColumnView, error) {
	var cols []board.ColumnView
	err := s.query(ctx, "ListColumns", actor, id, func(b *board.Board) error {
		cols = b.Columns()
		return nil
	})
	return cols, err
}

// --- Cards ---

// AddCard appends a card to a column.
func (s *BoardService) AddCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, title, description string) (board.CardView, error) {
	var cd board.CardView
	err := s.mutate(ctx, "AddCard", actor, id, func(b *board.Board) error {
		var err error
		cd, err = b.AddCard(columnID, title, description, actor, s.clock)
		return err
	}, columnAttr(columnID))
	return cd, err
}

// MoveCard moves a card to targetOrder in column to.
func (s *BoardService) MoveCard(ctx context.Context, actor board.UserID, id board.BoardID, cardID board.CardID, from, to board.ColumnID, targetOrder int) error {
	return s.mutate(ctx, "MoveCard", actor, id, func(b *board.Board) error {
		return b.MoveCard(cardID, from, to, targetOrder, actor)
	},
		cardAttr(cardID),
		attribute.String("board.from_column_id", from.String()),
		attribute.String("board.to_column_id", to.String()),
		attribute.Int("board.order", targetOrder),
	)
}

// ReorderCard moves a card within its column.
func (s *BoardService) ReorderCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID, newOrder int) error {
	return s.mutate(ctx, "ReorderCard", actor, id, func(b *board.Board) error {
		return b.ReorderCard(columnID, cardID, newOrder, actor)
	}, columnAttr(columnID), cardAttr(cardID), attribute.Int("board.order", newOrder))
}

// ArchiveCard archives a card.
func (s *BoardService) ArchiveCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID) error {
	return s.mutate(ctx, "ArchiveCard", actor, id, func(b *board.Board) error {
		return b.ArchiveCard(columnID, cardID, actor)
	}, columnAttr(columnID), cardAttr(cardID))
}

// UnarchiveCard restores an archived card.
func (s *BoardService) UnarchiveCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID) error {
	return s.mutate(ctx, "UnarchiveCard", actor, id, func(b *board.Board) error {
		return b.UnarchiveCard(columnID, cardID, actor)
	}, columnAttr(columnID), cardAttr(cardID))
}

// RenameCard changes a card title.
func (s *BoardService) RenameCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID, title string) error {
	return s.mutate(ctx, "RenameCard", actor, id, func(b *board.Board) error {
		return b.RenameCard(columnID, cardID, title, actor)
	}, columnAttr(columnID), cardAttr(cardID))
}

// ChangeCardDescription replaces a card description.
func (s *BoardService) ChangeCardDescription(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID, description string) error {
	return s.mutate(ctx, "ChangeCardDescription", actor, id, func(b *board.Board) error {
		return b.ChangeCardDescription(columnID, cardID, description, actor)
	}, columnAttr(columnID), cardAttr(cardID))
}

// DeleteCard removes a card permanently.
func (s *BoardService) DeleteCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID) error {
	return s.mutate(ctx, "DeleteCard", actor, id, func(b *board.Board) error {
		return b.DeleteCard(columnID, cardID, actor)
	}, columnAttr(columnID), cardAttr(cardID))
}

// ListCards returns a column's cards in order, leaving archived cards out
// unless includeArchived is set.
func (s *BoardService) ListCards(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, includeArchived bool) ([]board.CardView, error) {
	var cards []board.CardView
	err := s.query(ctx, "ListCards", actor, id, func(b *board.Board) error {
		col, ok := b.Column(columnID)
		if !ok {
			return board.ErrColumnNotFound
		}
		if includeArchived {
			cards = col.Cards
		} else {
			cards = col.ActiveCards()
		}
		return nil
	})
	return cards, err
}
