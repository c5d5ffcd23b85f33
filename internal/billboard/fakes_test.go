package billboard

import (
	"context"
	"sync"

	"github.com/muurk/storeadmin/internal/storeapi"
)

// recorder collects calls from every fake in call order.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.list() {
		if e == event {
			n++
		}
	}
	return n
}

type fakeAPI struct {
	rec       *recorder
	updateErr error
	deleteErr error

	// onCall runs inside the request, before it returns.
	onCall func()

	updates []storeapi.LabelUpdate
	storeID string
}

func (f *fakeAPI) UpdateStore(ctx context.Context, storeID string, update *storeapi.LabelUpdate) error {
	f.rec.add("patch")
	f.storeID = storeID
	f.updates = append(f.updates, *update)
	if f.onCall != nil {
		f.onCall()
	}
	return f.updateErr
}

func (f *fakeAPI) DeleteStore(ctx context.Context, storeID string) error {
	f.rec.add("delete")
	f.storeID = storeID
	if f.onCall != nil {
		f.onCall()
	}
	return f.deleteErr
}

type fakeRouter struct{ rec *recorder }

func (f *fakeRouter) Refresh()         { f.rec.add("refresh") }
func (f *fakeRouter) Push(path string) { f.rec.add("push:" + path) }

type fakeNotifier struct{ rec *recorder }

func (f *fakeNotifier) Success(message string) { f.rec.add("success:" + message) }
func (f *fakeNotifier) Error(message string)   { f.rec.add("error:" + message) }

type harness struct {
	rec  *recorder
	api  *fakeAPI
	ctrl *Controller
}

func newHarness(initial *storeapi.Billboard) *harness {
	rec := &recorder{}
	api := &fakeAPI{rec: rec}
	ctrl := NewController(Options{
		StoreID:     "store-1",
		Origin:      "http://localhost:3000",
		InitialData: initial,
		API:         api,
		Router:      &fakeRouter{rec: rec},
		Notifier:    &fakeNotifier{rec: rec},
	})
	return &harness{rec: rec, api: api, ctrl: ctrl}
}
