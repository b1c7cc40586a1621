package ports

import (
	"context"

	"github.com/jsamuelsen11/flowboard/internal/domain/board"
)

// BoardService defines the command and query port for boards. There is one
// method per command; each loads a board, applies a single aggregate method
// and saves the result. Every call names the acting user, and failures carry
// the aggregate's coded errors unchanged.
//
// Commands on a missing board return board.ErrBoardNotFound. Queries return
// board.ErrMemberRequired when the actor does not belong to the board.
type BoardService interface {
	// CreateBoard creates a board with actor as its sole owner.
	CreateBoard(ctx context.Context, actor board.UserID, name string) (board.BoardView, error)

	// GetBoard returns the full projection of one board.
	GetBoard(ctx context.Context, actor board.UserID, id board.BoardID) (board.BoardView, error)

	// ListBoards returns the boards actor belongs to, oldest first.
	ListBoards(ctx context.Context, actor board.UserID) ([]board.BoardView, error)

	// RenameBoard renames a board. Owner only.
	RenameBoard(ctx context.Context, actor board.UserID, id board.BoardID, name string) error

	// DeleteBoard removes a board and everything on it. Owner only.
	DeleteBoard(ctx context.Context, actor board.UserID, id board.BoardID) error

	// AddMember adds user with role. Owner only.
	AddMember(ctx context.Context, actor board.UserID, id board.BoardID, user board.UserID, role board.Role) error

	// RemoveMember removes user. Owner only; the last owner stays.
	RemoveMember(ctx context.Context, actor board.UserID, id board.BoardID, user board.UserID) error

	// ChangeMemberRole sets user's role. Owner only; the last owner stays.
	ChangeMemberRole(ctx context.Context, actor board.UserID, id board.BoardID, user board.UserID, role board.Role) error

	// AddColumn appends a column. A nil wipLimit means unlimited.
	AddColumn(ctx context.Context, actor board.UserID, id board.BoardID, name string, wipLimit *int) (board.ColumnView, error)

	RenameColumn(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, name string) error
	ReorderColumn(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, newOrder int) error

	// SetColumnWipLimit replaces a column's WIP limit. Nil clears it.
	SetColumnWipLimit(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, wipLimit *int) error

	// ListColumns returns the columns in order with their cards.
	ListColumns(ctx context.Context, actor board.UserID, id board.BoardID) ([]board.ColumnView, error)

	// AddCard appends a card to a column.
	AddCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, title, description string) (board.CardView, error)

	// MoveCard moves a card between columns, or within one column when from
	// and to are equal.
	MoveCard(ctx context.Context, actor board.UserID, id board.BoardID, cardID board.CardID, from, to board.ColumnID, targetOrder int) error

	ReorderCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID, newOrder int) error
	ArchiveCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID) error
	UnarchiveCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID) error
	RenameCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID, title string) error
	ChangeCardDescription(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID, description string) error
	DeleteCard(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, cardID board.CardID) error

	// ListCards returns a column's cards in order. Archived cards are left
	// out unless includeArchived is set.
	ListCards(ctx context.Context, actor board.UserID, id board.BoardID, columnID board.ColumnID, includeArchived bool) ([]board.CardView, error)
}
