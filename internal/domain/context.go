package domain

import "context"

// Action is one deferred write with a compensating rollback, such as
// persisting a board at an expected version.
//
// Action lives in the domain layer so callers that only stage work do not
// depend on the application layer.
type Action interface {
	// Execute performs the write.
	Execute(ctx context.Context) error

	// Rollback reverses a successful Execute. It is never called when
	// Execute failed.
	Rollback(ctx context.Context) error

	// Description names the action in logs (e.g. "save board 9f1c...").
	Description() string
}

// WriteStager is the domain's view of a request-scoped unit of work. Staged
// entities are visible to later reads in the same request; their actions run
// together on commit.
type WriteStager interface {
	Stage(key string, entity any, action Action) error
}
