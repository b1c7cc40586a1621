package app

import (
	"context"
	"log/slog"

	appctx "github.com/jsamuelsen11/flowboard/internal/app/context"
	"github.com/jsamuelsen11/flowboard/internal/domain/board"
	"github.com/jsamuelsen11/flowboard/internal/platform/logging"
)

type seedColumn struct {
	name  string
	wip   *int
	cards [][2]string
}

type seedBoard struct {
	name    string
	columns []seedColumn
}

func intPtr(n int) *int { return &n }

var demoBoards = []seedBoard{
	{
		name: "My Board",
		columns: []seedColumn{
			{name: "To Do", wip: intPtr(5), cards: [][2]string{{"Task A", "First task"}, {"Task B", ""}}},
			{name: "In Process", wip: intPtr(3), cards: [][2]string{{"Task C", "In progress"}}},
			{name: "Done", cards: [][2]string{{"Task D", "Completed"}}},
		},
	},
	{
		name: "Personal Board",
		columns: []seedColumn{
			{name: "Ideas", cards: [][2]string{{"Read a book", ""}}},
			{name: "In Progress", cards: [][2]string{{"Write blog post", "Drafting..."}}},
			{name: "Done"},
		},
	},
}

// SeedDemo stores the demo boards owned by owner, unless the repository
// already holds boards. Both boards are committed together: if the second
// save fails the first is removed again. It returns the seeded projections,
// or nil when seeding was skipped.
func (s *BoardService) SeedDemo(ctx context.Context, owner board.UserID) (_ []board.BoardView, err error) {
	ctx, end := s.begin(ctx, "SeedDemo", owner)
	defer func() { end(err) }()

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		logging.FromContext(ctx).InfoContext(ctx, "repository already seeded",
			slog.Int("boards", len(existing)),
		)
		return nil, nil
	}

	rc := appctx.New(ctx)
	views := make([]board.BoardView, 0, len(demoBoards))
	for _, spec := range demoBoards {
		b, err := s.buildDemo(spec, owner)
		if err != nil {
			return nil, err
		}
		loaded := &loadedBoard{board: b}
		if err := rc.Stage(boardKey(b.ID()), loaded, &saveBoardAction{repo: s.repo, target: loaded}); err != nil {
			return nil, err
		}
		views = append(views, b.View())
	}
	if err := rc.Commit(ctx); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *BoardService) buildDemo(spec seedBoard, owner board.UserID) (*board.Board, error) {
	b, err := board.New(spec.name, owner, s.clock)
	if err != nil {
		return nil, err
	}
	for _, sc := range spec.columns {
		col, err := b.AddColumn(sc.name, owner, sc.wip)
		if err != nil {
			return nil, err
		}
		for _, cd := range sc.cards {
			if _, err := b.AddCard(col.ID, cd[0], cd[1], owner, s.clock); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
