package appctx

import "sync"

// The process-wide context holder. Construction itself is ordinary (New
// returns a fresh context every time); sharing one instance across the
// process is opt-in through Set, which makes the first stored context win.
var (
	sharedMu sync.Mutex
	shared   *AppContext
)

// Set stores ctx as the process-wide context if none is stored yet and
// returns the stored context either way. Callers that race on first
// construction all end up with the same instance.
func Set(ctx *AppContext) *AppContext {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		shared = ctx
	}
	return shared
}

// Get returns the process-wide context, if one has been stored.
func Get() (*AppContext, bool) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	return shared, shared != nil
}

// reset clears the holder. Tests only.
func reset() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	shared = nil
}
