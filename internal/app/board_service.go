// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	appctx "github.com/jsamuelsen11/flowboard/internal/app/context"
	"github.com/jsamuelsen11/flowboard/internal/domain"
	"github.com/jsamuelsen11/flowboard/internal/domain/board"
	"github.com/jsamuelsen11/flowboard/internal/platform/logging"
	"github.com/jsamuelsen11/flowboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/flowboard/internal/ports"
)

var _ ports.BoardService = (*BoardService)(nil)

// BoardService implements ports.BoardService. Each command loads the board
// through a request context, applies exactly one aggregate method and commits
// a versioned save. Commands that leave the board unchanged skip the save.
type BoardService struct {
	repo    ports.BoardRepository
	clock   domain.Clock
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// NewBoardService creates a BoardService. A nil clock uses the system clock,
// nil metrics record nothing, and a nil logger discards output.
func NewBoardService(repo ports.BoardRepository, clock domain.Clock, metrics *telemetry.Metrics, logger *slog.Logger) *BoardService {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BoardService{
		repo:    repo,
		clock:   clock,
		metrics: metrics,
		tracer:  otel.Tracer(telemetry.InstrumentationName),
		logger:  logger,
	}
}

// loadedBoard is what the request context caches per board.
type loadedBoard struct {
	board   *board.Board
	version int64
}

func boardKey(id board.BoardID) string { return "board:" + id.String() }

func (s *BoardService) load(rc *appctx.RequestContext, id board.BoardID) (*loadedBoard, error) {
	return appctx.GetOrFetch(rc, boardKey(id), func(ctx context.Context) (*loadedBoard, error) {
		b, version, err := s.repo.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		return &loadedBoard{board: b, version: version}, nil
	})
}

// begin opens the span and enriches the context logger for one operation.
// The returned func closes both and records the command metric.
func (s *BoardService) begin(ctx context.Context, op string, actor board.UserID, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	attrs = append(attrs, attribute.String("board.actor", actor.String()))
	ctx, span := s.tracer.Start(ctx, "BoardService."+op, trace.WithAttributes(attrs...))

	logAttrs := make([]any, 0, len(attrs))
	for _, a := range attrs {
		logAttrs = append(logAttrs, slog.String(logKey(a.Key), a.Value.Emit()))
	}
	ctx = logging.With(logging.WithLogger(ctx, s.logger), logAttrs...)
	logging.FromContext(ctx).InfoContext(ctx, "handling board command", slog.String("operation", op))

	return ctx, func(err error) {
		defer span.End()
		result := resultOf(err)
		s.metrics.RecordCommand(ctx, op, result, time.Since(start))
		if err == nil {
			return
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, result)
		logger := logging.FromContext(ctx)
		if result == telemetry.ResultError {
			logger.ErrorContext(ctx, "board command failed",
				slog.String("operation", op),
				slog.Any("error", err),
			)
			return
		}
		logger.WarnContext(ctx, "board command rejected",
			slog.String("operation", op),
			slog.Any("codes", domain.Codes(err)),
			slog.Any("error", err),
		)
	}
}

// logKey turns "board.column_id" into "column_id".
func logKey(k attribute.Key) string {
	if name, ok := strings.CutPrefix(string(k), "board."); ok {
		return name
	}
	return string(k)
}

// resultOf labels an outcome with the error kind for metrics and spans.
func resultOf(err error) string {
	if err == nil {
		return telemetry.ResultOK
	}
	if kind, ok := domain.KindOf(err); ok {
		return kind.String()
	}
	return telemetry.ResultError
}

// mutate runs one command: load, apply, stage the save and commit.
func (s *BoardService) mutate(ctx context.Context, op string, actor board.UserID, id board.BoardID, apply func(b *board.Board) error, attrs ...attribute.KeyValue) (err error) {
	ctx, end := s.begin(ctx, op, actor, append(attrs, attribute.String("board.board_id", id.String()))...)
	defer func() { end(err) }()

	rc := appctx.New(ctx)
	loaded, err := s.load(rc, id)
	if err != nil {
		return err
	}

	before := loaded.board.View()
	prior := &loadedBoard{board: loaded.board.Clone(), version: loaded.version}
	if err := apply(loaded.board); err != nil {
		return err
	}
	if reflect.DeepEqual(before, loaded.board.View()) {
		return nil
	}

	action := &saveBoardAction{repo: s.repo, target: loaded, prior: prior}
	if err := rc.Stage(boardKey(id), loaded, action); err != nil {
		return err
	}
	return rc.Commit(ctx)
}

// query loads a board for a member-only read.
func (s *BoardService) query(ctx context.Context, op string, actor board.UserID, id board.BoardID, read func(b *board.Board) error) (err error) {
	ctx, end := s.begin(ctx, op, actor, attribute.String("board.board_id", id.String()))
	defer func() { end(err) }()

	b, _, err := s.repo.Load(ctx, id)
	if err != nil {
		return err
	}
	if err := b.EnsureCollaborator(actor); err != nil {
		return err
	}
	return read(b)
}

// --- Boards ---

// CreateBoard creates a board owned by actor.
func (s *BoardService) CreateBoard(ctx context.Context, actor board.UserID, name string) (_ board.BoardView, err error) {
	ctx, end := s.begin(ctx, "CreateBoard", actor)
	defer func() { end(err) }()

	b, err := board.New(name, actor, s.clock)
	if err != nil {
		return board.BoardView{}, err
	}

	rc := appctx.New(ctx)
	loaded := &loadedBoard{board: b}
	if err := rc.Stage(boardKey(b.ID()), loaded, &saveBoardAction{repo: s.repo, target: loaded}); err != nil {
		return board.BoardView{}, err
	}
	if err := rc.Commit(ctx); err != nil {
		return board.BoardView{}, err
	}
	return b.View(), nil
}

// GetBoard returns the board's projection.
func (s *BoardService) GetBoard(ctx context.Context, actor board.UserID, id board.BoardID) (board.BoardView, error) {
	var view board.BoardView
	err := s.query(ctx, "GetBoard", actor, id, func(b *board.Board) error {
		view = b.View()
		return nil
	})
	return view, err
}

// ListBoards returns the boards actor belongs to, oldest first.
func (s *BoardService) ListBoards(ctx context.Context, actor board.UserID) (_ []board.BoardView, err error) {
	ctx, end := s.begin(ctx, "ListBoards", actor)
	defer func() { end(err) }()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]board.BoardView, 0, len(all))
	for _, v := range all {
		if v.HasMember(actor) {
			mine = append(mine, v)
		}
	}
	return mine, nil
}

// RenameBoard renames a board.
func (s *BoardService) RenameBoard(ctx context.Context, actor board.UserID, id board.BoardID, name string) error {
	return s.mutate(ctx, "RenameBoard", actor, id, func(b *board.Board) error {
		return b.Rename(name, actor)
	})
}

// DeleteBoard removes a board. Owner only.
func (s *BoardService) DeleteBoard(ctx context.Context, actor board.UserID, id board.BoardID) (err error) {
	ctx, end := s.begin(ctx, "DeleteBoard", actor, attribute.String("board.board_id", id.String()))
	defer func() { end(err) }()

	rc := appctx.New(ctx)
	loaded, err := s.load(rc, id)
	if err != nil {
		return err
	}
	if err := loaded.board.EnsureOwner(actor); err != nil {
		return err
	}
	if err := rc.AddAction(&deleteBoardAction{repo: s.repo, target: loaded}); err != nil {
		return err
	}
	if err := rc.Commit(ctx); err != nil {
		return err
	}
	rc.Forget(boardKey(id))
	return nil
}

// --- Membership ---

// AddMember adds user to the board with role.
func (s *BoardService) AddMember(ctx context.Context, actor board.UserID, id board.BoardID, user board.UserID, role board.Role) error {
	return s.mutate(ctx, "AddMember", actor, id, func(b *board.Board) error {
		return b.AddMember(user, role, actor, s.clock)
	}, attribute.String("board.user_id", user.String()), attribute.String("board.role", role.String()))
}

// RemoveMember removes user from the board.
func (s *BoardService) RemoveMember(ctx context.Context, actor board.UserID, id board.BoardID, user board.UserID) error {
	return s.mutate(ctx, "RemoveMember", actor, id, func(b *board.Board) error {
		return b.RemoveMember(user, actor)
	}, attribute.String("board.user_id", user.String()))
}

// ChangeMemberRole sets user's role.
func (s *BoardService) ChangeMemberRole(ctx context.Context, actor board.UserID, id board.BoardID, user board.UserID, role board.Role) error {
	return s.mutate(ctx, "ChangeMemberRole", actor, id, func(b *board.Board) error {
		return b.ChangeRole(user, role, actor)
	}, attribute.String("board.user_id", user.String()), attribute.String("board.role", role.String()))
}
