package audit

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/delivery-marketplace/internal/logging"
)

const (
	queueSize    = 100
	writeTimeout = 5 * time.Second
)

// Actions recorded by the service.
const (
	ActionDeliveryBoyApproved = "deliveryboy.approved"
	ActionDeliveryBoyRejected = "deliveryboy.rejected"
	ActionRetailerApproved    = "retailer.approved"
	ActionRetailerRejected    = "retailer.rejected"
	ActionUserBlocked         = "user.blocked"
	ActionUserUnblocked       = "user.unblocked"
)

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder accepts audit events without blocking the caller.
type Recorder interface {
	Dispatch(ev Event)
}

// Dispatcher writes events from a buffered queue on a single worker.
// Events are dropped when the queue is full; audit never breaks a request.
type Dispatcher struct {
	logger *Logger
	log    logging.Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger, log logging.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log.With("component", "audit"),
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.logger.Log(ctx, ev); err != nil {
			d.log.Error(ctx, "audit write failed", "action", ev.Action, "err", err)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn(context.Background(), "audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits for the queue to drain or ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Nop discards every event.
type Nop struct{}

func (Nop) Dispatch(Event) {}

var (
	_ Recorder = (*Dispatcher)(nil)
	_ Recorder = Nop{}
)
