package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/flowboard/internal/domain"
	"github.com/jsamuelsen11/flowboard/internal/ports"
)

var (
	_ domain.Action = (*saveBoardAction)(nil)
	_ domain.Action = (*deleteBoardAction)(nil)
)

// saveBoardAction writes target at its loaded version and advances the
// version on success. prior is the board as loaded, or nil for a new board;
// rollback restores it, or deletes the board when there was none.
type saveBoardAction struct {
	repo   ports.BoardRepository
	target *loadedBoard
	prior  *loadedBoard
	saved  int64
}

func (a *saveBoardAction) Execute(ctx context.Context) error {
	version, err := a.repo.Save(ctx, a.target.board, a.target.version)
	if err != nil {
		return err
	}
	a.saved = version
	a.target.version = version
	return nil
}

func (a *saveBoardAction) Rollback(ctx context.Context) error {
	if a.prior == nil {
		return a.repo.Delete(ctx, a.target.board.ID(), a.saved)
	}
	_, err := a.repo.Save(ctx, a.prior.board, a.saved)
	return err
}

func (a *saveBoardAction) Description() string {
	return fmt.Sprintf("save board %s", a.target.board.ID())
}

// deleteBoardAction removes target at its loaded version. Rollback stores
// the board again as a new record.
type deleteBoardAction struct {
	repo   ports.BoardRepository
	target *loadedBoard
}

func (a *deleteBoardAction) Execute(ctx context.Context) error {
	return a.repo.Delete(ctx, a.target.board.ID(), a.target.version)
}

func (a *deleteBoardAction) Rollback(ctx context.Context) error {
	_, err := a.repo.Save(ctx, a.target.board, 0)
	return err
}

func (a *deleteBoardAction) Description() string {
	return fmt.Sprintf("delete board %s", a.target.board.ID())
}
