package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ToastKind distinguishes success from failure notifications.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

// Toast is one notification as shown to the user.
type Toast struct {
	Kind    ToastKind
	Message string
}

// Render returns the styled one-line toast.
func (t Toast) Render() string {
	if t.Kind == ToastError {
		return ErrorToastStyle.Render(FailureMarker + " " + t.Message)
	}
	return SuccessToastStyle.Render(SuccessMarker + " " + t.Message)
}

// Toaster prints notifications to a writer as they arrive. It satisfies
// billboard.Notifier.
type Toaster struct {
	out io.Writer

	mu     sync.Mutex
	toasts []Toast
}

// NewToaster creates a toaster writing to w. If w is nil, os.Stdout is used.
func NewToaster(w io.Writer) *Toaster {
	if w == nil {
		w = os.Stdout
	}
	return &Toaster{out: w}
}

// Success shows a success notification.
func (t *Toaster) Success(message string) {
	t.show(Toast{Kind: ToastSuccess, Message: message})
}

// Error shows a failure notification.
func (t *Toaster) Error(message string) {
	t.show(Toast{Kind: ToastError, Message: message})
}

func (t *Toaster) show(toast Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.toasts = append(t.toasts, toast)
	_, _ = fmt.Fprintln(t.out, toast.Render())
}

// Last returns the most recent toast and whether there was one.
func (t *Toaster) Last() (Toast, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.toasts) == 0 {
		return Toast{}, false
	}
	return t.toasts[len(t.toasts)-1], true
}

// Failed reports whether any error toast was shown.
func (t *Toaster) Failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, toast := range t.toasts {
		if toast.Kind == ToastError {
			return true
		}
	}
	return false
}
