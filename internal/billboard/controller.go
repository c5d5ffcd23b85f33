package billboard

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/storeadmin/internal/logging"
	"github.com/muurk/storeadmin/internal/storeapi"
	"github.com/muurk/storeadmin/internal/urls"
)

// API is the subset of the admin API the form talks to.
type API interface {
	UpdateStore(ctx context.Context, storeID string, update *storeapi.LabelUpdate) error
	DeleteStore(ctx context.Context, storeID string) error
}

// Router refreshes page data and navigates.
type Router interface {
	Refresh()
	Push(path string)
}

// Notifier surfaces a one-line message to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Action names the request a controller is running.
type Action int

const (
	ActionNone Action = iota
	ActionSave
	ActionDelete
)

// Options configures a Controller.
type Options struct {
	// StoreID is the route parameter identifying the store.
	StoreID string

	// Origin is the dashboard origin used for the informational API alert.
	Origin string

	// InitialData is the record being edited, or nil when creating.
	InitialData *storeapi.Billboard

	API      API
	Router   Router
	Notifier Notifier

	// OnStart, if set, is called once an action holds the loading guard and
	// before its request is sent. Ignored actions never reach it.
	OnStart func(Action)

	// Logger defaults to the global logger.
	Logger *zap.Logger
}

// Gate is a snapshot of the confirmation gate's presentation state.
type Gate struct {
	IsOpen  bool
	Loading bool
}

// Controller owns the billboard form state and performs its two actions.
//
// Only one action may be in flight at a time; the loading flag is the guard.
// All methods are safe to call from the goroutine running an action, so a
// view can render Loading() while a request is outstanding.
type Controller struct {
	storeID string
	origin  string
	heading Heading

	api      API
	router   Router
	notifier Notifier
	onStart  func(Action)
	logger   *zap.Logger

	mu        sync.Mutex
	values    FormValues
	loading   bool
	modalOpen bool
}

// NewController creates a form controller seeded from opts.InitialData.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}

	return &Controller{
		storeID:  opts.StoreID,
		origin:   opts.Origin,
		heading:  HeadingFor(opts.InitialData),
		api:      opts.API,
		router:   opts.Router,
		notifier: opts.Notifier,
		onStart:  opts.OnStart,
		logger:   logger.With(zap.String("store_id", opts.StoreID)),
		values:   DefaultValues(opts.InitialData),
	}
}

// Heading returns the title, description, toast and action copy.
func (c *Controller) Heading() Heading {
	return c.heading
}

// StoreID returns the store the form targets.
func (c *Controller) StoreID() string {
	return c.storeID
}

// APIAlert returns the informational public API URL for the store.
func (c *Controller) APIAlert() Alert {
	return APIAlertFor(c.origin, c.storeID)
}

// Values returns the current form values.
func (c *Controller) Values() FormValues {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// SetLabel binds the label input. Edits are ignored while loading, matching
// the disabled input.
func (c *Controller) SetLabel(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading {
		return
	}
	c.values.Label = label
}

// Loading reports whether an action is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Gate returns the confirmation gate state.
func (c *Controller) Gate() Gate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Gate{IsOpen: c.modalOpen, Loading: c.loading}
}

// Submit validates values and, if valid, saves them.
//
// A *ValidationError is the only error returned; in that case nothing is
// sent and the loading flag is untouched. Request failures are logged and
// reported through the notifier.
func (c *Controller) Submit(ctx context.Context, values FormValues) error {
	if err := values.Validate(); err != nil {
		c.logger.Debug("Billboard form rejected", zap.Error(err))
		return err
	}

	if !c.begin(ActionSave, func() { c.values = values }) {
		c.logger.Debug("Submit ignored, action already in flight")
		return nil
	}
	defer c.finish(false)

	if err := c.api.UpdateStore(ctx, c.storeID, values.ToUpdate()); err != nil {
		c.logger.Error("Billboard save failed",
			zap.Error(fmt.Errorf("%w: %w", ErrSubmissionFailed, err)),
			zap.String("reason", storeapi.ShortMessage(err)),
		)
		c.notifier.Error(MsgSubmitFailed)
		return nil
	}

	c.router.Refresh()
	c.notifier.Success(c.heading.ToastMessage)
	c.logger.Info("Billboard saved", zap.String("label", values.Label))
	return nil
}

// SubmitCurrent submits the values currently bound to the form.
func (c *Controller) SubmitCurrent(ctx context.Context) error {
	return c.Submit(ctx, c.Values())
}

// RequestDelete opens the confirmation gate. It never touches the network
// and is ignored while loading, matching the disabled delete button.
func (c *Controller) RequestDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading {
		return
	}
	c.modalOpen = true
}

// CloseDelete closes the confirmation gate without deleting.
func (c *Controller) CloseDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading {
		return
	}
	c.modalOpen = false
}

// ConfirmDelete deletes the record. On success the router refreshes and
// navigates to the root route before the success notification. The gate is
// closed and loading cleared whatever the outcome.
func (c *Controller) ConfirmDelete(ctx context.Context) {
	if !c.begin(ActionDelete, nil) {
		c.logger.Debug("Delete ignored, action already in flight")
		return
	}
	defer c.finish(true)

	if err := c.api.DeleteStore(ctx, c.storeID); err != nil {
		c.logger.Error("Billboard delete failed",
			zap.Error(fmt.Errorf("%w: %w", ErrDeletionBlocked, err)),
			zap.String("reason", storeapi.ShortMessage(err)),
		)
		c.notifier.Error(MsgDeleteBlocked)
		return
	}

	c.router.Refresh()
	c.router.Push(urls.Root)
	c.notifier.Success(MsgDeleted)
	c.logger.Info("Billboard deleted")
}

// begin sets the loading flag if no action is in flight. apply runs under
// the same lock; the OnStart hook runs after it is released.
func (c *Controller) begin(action Action, apply func()) bool {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return false
	}
	c.loading = true
	if apply != nil {
		apply()
	}
	c.mu.Unlock()

	if c.onStart != nil {
		c.onStart(action)
	}
	return true
}

func (c *Controller) finish(closeGate bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if closeGate {
		c.modalOpen = false
	}
}
