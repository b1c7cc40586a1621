package appctx

import "github.com/jsamuelsen11/flowboard/internal/domain"

// AddAction queues action for Commit without touching the cache. Use it for
// writes that leave nothing to read back, such as a delete.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, action)
	return nil
}

// Pending reports how many actions wait for Commit.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.items)
}
