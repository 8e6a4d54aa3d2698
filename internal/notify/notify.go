package notify

import (
	"sync"

	"github.com/rs/zerolog"
)

// Variant selects the visual treatment of a notification.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient user-facing message. Delivery is
// fire-and-forget; no acknowledgment is expected.
type Notification struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// Notifier accepts notifications for eventual display.
type Notifier interface {
	Notify(n Notification)
}

// maxPending bounds the buffer when no client is draining; oldest entries
// are dropped first.
const maxPending = 64

// Hub buffers notifications until the UI drains them, and echoes each one to
// the log for diagnostics.
type Hub struct {
	mu      sync.Mutex
	pending []Notification
	logger  zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{logger: logger}
}

// Notify queues a notification for display.
func (h *Hub) Notify(n Notification) {
	if n.Variant == "" {
		n.Variant = VariantDefault
	}

	h.mu.Lock()
	h.pending = append(h.pending, n)
	if len(h.pending) > maxPending {
		h.pending = h.pending[len(h.pending)-maxPending:]
	}
	h.mu.Unlock()

	h.logger.Debug().
		Str("title", n.Title).
		Str("variant", string(n.Variant)).
		Msg(n.Description)
}

// Drain returns all pending notifications and clears the buffer.
func (h *Hub) Drain() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := h.pending
	h.pending = nil
	return out
}
