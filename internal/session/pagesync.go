package session

import (
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/storeadmin/internal/billboard"
	"github.com/muurk/storeadmin/internal/config"
	"github.com/muurk/storeadmin/internal/logging"
)

// PageSync brings the cached page data in the registry up to date when the
// router refreshes. Begin is wired to the controller's OnStart hook, so the
// pending action is always the one holding the loading guard; the refresh
// only happens on success.
type PageSync struct {
	Registry *config.Registry
	Path     string // registry file; empty means the default location
	StoreID  string

	// Label returns the label that was just saved.
	Label func() string

	mu     sync.Mutex
	action billboard.Action
	err    error
}

// Begin records the action about to run.
func (p *PageSync) Begin(action billboard.Action) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.action = action
}

// Refresh applies the pending action to the registry and saves it.
// Save errors are kept for Err; a stale cache must not fail the action.
func (p *PageSync) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.action {
	case billboard.ActionSave:
		p.Registry.RecordBillboard(p.StoreID, p.Label())
	case billboard.ActionDelete:
		p.Registry.ForgetBillboard(p.StoreID)
	default:
		return
	}
	p.action = billboard.ActionNone

	if err := p.Registry.Save(p.Path); err != nil {
		logging.Warn("Failed to update local registry",
			zap.String("store_id", p.StoreID),
			zap.Error(err),
		)
		p.err = err
	}
}

// Err returns the last registry save error, if any.
func (p *PageSync) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
