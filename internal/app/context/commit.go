package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/flowboard/internal/domain"
	"github.com/jsamuelsen11/flowboard/internal/platform/logging"
)

// Commit runs the queued actions in the order they were staged. When one
// fails, the actions before it are rolled back newest first and the failure
// is returned wrapped with the action's description. Rollback failures are
// logged and otherwise ignored.
//
// The RequestContext is committed once Commit returns, whatever the outcome.
// A second call returns ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	items := rc.items
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, action := range items {
		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", action.Description()),
		)

		if err := action.Execute(ctx); err != nil {
			logger.WarnContext(ctx, "action failed, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			rollback(ctx, logger, items[:i])
			return fmt.Errorf("%s: %w", action.Description(), err)
		}
	}

	return nil
}

func rollback(ctx context.Context, logger *slog.Logger, done []domain.Action) {
	for i := len(done) - 1; i >= 0; i-- {
		action := done[i]
		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
		}
	}
}
