// Package memory provides an in-process BoardRepository. Boards are kept as
// private deep copies so callers never share state with the store or with
// each other.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/flowboard/internal/domain/board"
	"github.com/jsamuelsen11/flowboard/internal/ports"
)

var _ ports.BoardRepository = (*BoardRepository)(nil)

type record struct {
	board   *board.Board
	version int64
}

// BoardRepository is a versioned map of boards guarded by a RWMutex. The
// zero value is not usable; call NewBoardRepository.
type BoardRepository struct {
	mu     sync.RWMutex
	boards map[board.BoardID]record
}

// NewBoardRepository returns an empty repository.
func NewBoardRepository() *BoardRepository {
	return &BoardRepository{boards: make(map[board.BoardID]record)}
}

// Load returns a copy of the stored board and its version.
func (r *BoardRepository) Load(ctx context.Context, id board.BoardID) (*board.Board, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.boards[id]
	if !ok {
		return nil, 0, board.ErrBoardNotFound
	}
	return rec.board.Clone(), rec.version, nil
}

// Save stores a copy of b when expectedVersion matches the stored version,
// or is 0 for a board that is not stored yet.
func (r *BoardRepository) Save(ctx context.Context, b *board.Board, expectedVersion int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.boards[b.ID()].version
	if current != expectedVersion {
		return 0, ports.ErrVersionConflict
	}

	next := current + 1
	r.boards[b.ID()] = record{board: b.Clone(), version: next}
	return next, nil
}

// Delete removes the board when expectedVersion matches.
func (r *BoardRepository) Delete(ctx context.Context, id board.BoardID, expectedVersion int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.boards[id]
	if !ok {
		return board.ErrBoardNotFound
	}
	if rec.version != expectedVersion {
		return ports.ErrVersionConflict
	}
	delete(r.boards, id)
	return nil
}

// List projects every board, oldest first. Ties keep a stable order by id.
func (r *BoardRepository) List(ctx context.Context) ([]board.BoardView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	views := make([]board.BoardView, 0, len(r.boards))
	for _, rec := range r.boards {
		views = append(views, rec.board.View())
	}
	r.mu.RUnlock()

	slices.SortFunc(views, func(a, b board.BoardView) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
	return views, nil
}
