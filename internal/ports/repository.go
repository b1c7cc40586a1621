package ports

import (
	"context"

	"github.com/jsamuelsen11/flowboard/internal/domain"
	"github.com/jsamuelsen11/flowboard/internal/domain/board"
)

// ErrVersionConflict is returned by BoardRepository.Save and Delete when the
// stored version no longer matches the caller's expected version.
var ErrVersionConflict = domain.Conflict("Board.Version.Conflict", "board was changed by another writer")

// BoardRepository persists whole Board aggregates. There is no partial load
// or save: a board travels with all of its columns, cards and members.
//
// Every stored board carries a version that starts at 1 and increases by one
// on each successful save. Writers pass the version they loaded; a mismatch
// fails with ErrVersionConflict and nothing is written.
type BoardRepository interface {
	// Load returns an independent copy of the board and its current version.
	// Returns board.ErrBoardNotFound if no board has the id.
	Load(ctx context.Context, id board.BoardID) (*board.Board, int64, error)

	// Save stores b and returns the new version. Pass expectedVersion 0 to
	// insert a board that must not exist yet.
	Save(ctx context.Context, b *board.Board, expectedVersion int64) (int64, error)

	// Delete removes the board at expectedVersion.
	// Returns board.ErrBoardNotFound if no board has the id.
	Delete(ctx context.Context, id board.BoardID, expectedVersion int64) error

	// List returns a projection of every stored board, oldest first.
	List(ctx context.Context) ([]board.BoardView, error)
}
