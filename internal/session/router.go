package session

import (
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/storeadmin/internal/logging"
)

// Router is an in-process stand-in for page navigation. It tracks the
// current route and runs a hook whenever page data should be reloaded.
type Router struct {
	mu        sync.Mutex
	path      string
	history   []string
	refreshes int
	onRefresh func()
	logger    *zap.Logger
}

// NewRouter creates a router positioned at start. onRefresh may be nil.
func NewRouter(start string, onRefresh func()) *Router {
	return &Router{
		path:      start,
		history:   []string{start},
		onRefresh: onRefresh,
		logger:    logging.GetLogger(),
	}
}

// Refresh reloads page data for the current route.
func (r *Router) Refresh() {
	r.mu.Lock()
	r.refreshes++
	hook := r.onRefresh
	path := r.path
	r.mu.Unlock()

	r.logger.Debug("Page refresh", zap.String("path", path))
	if hook != nil {
		hook()
	}
}

// Push navigates to path.
func (r *Router) Push(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Debug("Navigate", zap.String("from", r.path), zap.String("to", path))
	r.path = path
	r.history = append(r.history, path)
}

// Path returns the current route.
func (r *Router) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

// History returns every route visited, oldest first.
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

// Refreshes returns how many times Refresh has been called.
func (r *Router) Refreshes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshes
}
