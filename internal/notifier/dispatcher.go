package notifier

import (
	"context"
	"sync"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Listener receives every dispatched notification. Implementations must be
// safe for concurrent use; returned errors are logged and never abort a
// dispatch.
type Listener interface {
	Notify(ctx context.Context, n *model.Notification) error
}

// Dispatcher is the single fan-out point for notifications: Dispatch persists
// the notification, records it in a per-receiver write-through log and then
// invokes every subscribed listener in subscription order.
type Dispatcher struct {
	logger *zap.Logger
	repo   repository.Notification

	mu        sync.RWMutex
	listeners []Listener
	userLog   map[uuid.UUID][]*model.Notification
}

func New(logger *zap.Logger, repo repository.Notification) *Dispatcher {
	return &Dispatcher{
		logger:  logger,
		repo:    repo,
		userLog: make(map[uuid.UUID][]*model.Notification),
	}
}

// Subscribe registers a listener. Subscribing the same listener twice is a
// no-op; membership is identity-based.
func (d *Dispatcher) Subscribe(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.listeners {
		if existing == l {
			return
		}
	}

	d.listeners = append(d.listeners, l)
}

func (d *Dispatcher) Unsubscribe(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, existing := range d.listeners {
		if existing == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Dispatch persists n, then notifies listeners against a snapshot of the
// registry taken at dispatch start. Persistence failures are returned before
// any listener runs; listener failures are isolated per listener.
func (d *Dispatcher) Dispatch(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	created, err := d.repo.Create(ctx, n)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.userLog[created.ReceiverID] = append(d.userLog[created.ReceiverID], created)
	snapshot := make([]Listener, len(d.listeners))
	copy(snapshot, d.listeners)
	d.mu.Unlock()

	for _, l := range snapshot {
		d.notifyOne(ctx, l, created)
	}

	return created, nil
}

func (d *Dispatcher) notifyOne(ctx context.Context, l Listener, n *model.Notification) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Sugar().Errorf("notification listener panicked on notification(%d): %v", n.ID, r)
		}
	}()

	if err := l.Notify(ctx, n); err != nil {
		d.logger.Sugar().Errorf("notification listener failed on notification(%d): %s", n.ID, err.Error())
	}
}

// UserLog returns the write-through log of notifications dispatched to a
// receiver within this process. The durable list lives in the record store;
// this view exists for listeners and diagnostics only.
func (d *Dispatcher) UserLog(receiverID uuid.UUID) []*model.Notification {
	d.mu.RLock()
	defer d.mu.RUnlock()

	log := make([]*model.Notification, len(d.userLog[receiverID]))
	copy(log, d.userLog[receiverID])
	return log
}

func (d *Dispatcher) ClearLog(receiverID uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.userLog, receiverID)
}
