// Package appctx provides the request-scoped unit of work used by the board
// service.
//
// A RequestContext memoizes loads for the life of one command and queues the
// writes that command produces. Commit runs the queued writes in order and,
// if one fails, rolls back the ones that already ran:
//
//	rc := appctx.New(ctx)
//
//	loaded, err := appctx.GetOrFetch(rc, "board:"+id.String(), loadBoard)
//	// ... apply one aggregate method ...
//	err = rc.Stage("board:"+id.String(), loaded, saveAction)
//
//	err = rc.Commit(ctx)
//
// Create one RequestContext per command and do not share it between
// commands.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/flowboard/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

// ErrAlreadyCommitted is returned when an action is staged on, or Commit is
// called for, a RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is staged.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when a key already holds a value
// of a different type. It means two call sites share a key by mistake.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext wraps a context.Context with a load cache and a write
// queue. The cache is only touched from the goroutine running the command;
// the queue is guarded so a commit cannot race a late Stage.
type RequestContext struct {
	context.Context

	cache map[string]cacheEntry

	queueMu   sync.Mutex
	items     []domain.Action
	committed bool
}

// cacheEntry keeps failed loads too, so a missing board is looked up once.
type cacheEntry struct {
	value any
	err   error
}

// New returns an empty RequestContext over ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns the value cached under key, calling fetchFn on the
// first request only. Errors are cached like values.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Stage replaces the cached value for key with entity and queues action for
// Commit. Later GetOrFetch calls for key see entity without fetching.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if err := rc.AddAction(action); err != nil {
		return err
	}
	rc.cache[key] = cacheEntry{value: entity}
	return nil
}

// Forget drops key from the cache so the next GetOrFetch fetches again.
func (rc *RequestContext) Forget(key string) {
	delete(rc.cache, key)
}
