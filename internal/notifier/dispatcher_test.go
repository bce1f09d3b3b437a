package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/repository/inmem"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingListener struct {
	mu  sync.Mutex
	got []*model.Notification
}

func (l *recordingListener) Notify(ctx context.Context, n *model.Notification) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.got = append(l.got, n)
	return nil
}

func (l *recordingListener) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.got)
}

type failingListener struct {
	calls int
}

func (l *failingListener) Notify(ctx context.Context, n *model.Notification) error {
	l.calls++
	return errors.New("listener is broken")
}

type panickingListener struct{}

func (l *panickingListener) Notify(ctx context.Context, n *model.Notification) error {
	panic("listener panicked")
}

func newTestDispatcher() *Dispatcher {
	store := inmem.New()
	return New(zap.NewNop(), store.Notification)
}

func notificationFor(receiverID uuid.UUID) *model.Notification {
	return &model.Notification{
		ReceiverID: receiverID,
		Message:    "test message",
		Type:       model.NOTIFICATION_TYPE_POST,
	}
}

func TestDispatcherSubscribeIsIdempotent(t *testing.T) {
	d := newTestDispatcher()
	listener := &recordingListener{}

	d.Subscribe(listener)
	d.Subscribe(listener)

	_, err := d.Dispatch(context.Background(), notificationFor(uuid.New()))
	require.NoError(t, err)

	require.Equal(t, 1, listener.count())
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := newTestDispatcher()
	listener := &recordingListener{}

	d.Subscribe(listener)
	d.Unsubscribe(listener)

	_, err := d.Dispatch(context.Background(), notificationFor(uuid.New()))
	require.NoError(t, err)

	require.Equal(t, 0, listener.count())

	// unsubscribing an unknown listener is a no-op
	d.Unsubscribe(&recordingListener{})
}

func TestDispatcherPersistsBeforeListeners(t *testing.T) {
	store := inmem.New()
	d := New(zap.NewNop(), store.Notification)

	receiverID := uuid.New()
	listener := &recordingListener{}
	d.Subscribe(listener)

	created, err := d.Dispatch(context.Background(), notificationFor(receiverID))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	require.Equal(t, 1, listener.count())
	require.Equal(t, created.ID, listener.got[0].ID)

	persisted, err := store.Notification.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, receiverID, persisted.ReceiverID)
}

func TestDispatcherIsolatesListenerFailures(t *testing.T) {
	store := inmem.New()
	d := New(zap.NewNop(), store.Notification)

	failing := &failingListener{}
	recording := &recordingListener{}
	d.Subscribe(failing)
	d.Subscribe(&panickingListener{})
	d.Subscribe(recording)

	created, err := d.Dispatch(context.Background(), notificationFor(uuid.New()))
	require.NoError(t, err)

	require.Equal(t, 1, failing.calls)
	require.Equal(t, 1, recording.count())

	_, err = store.Notification.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
}

func TestDispatcherInvokesListenersInSubscriptionOrder(t *testing.T) {
	d := newTestDispatcher()

	var mu sync.Mutex
	var order []string
	record := func(name string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, name)
	}

	d.Subscribe(&namedListener{name: "first", record: record})
	d.Subscribe(&namedListener{name: "second", record: record})

	_, err := d.Dispatch(context.Background(), notificationFor(uuid.New()))
	require.NoError(t, err)

	require.Equal(t, []string{"first", "second"}, order)
}

func TestDispatcherUserLog(t *testing.T) {
	d := newTestDispatcher()

	receiverID := uuid.New()
	otherID := uuid.New()

	_, err := d.Dispatch(context.Background(), notificationFor(receiverID))
	require.NoError(t, err)
	_, err = d.Dispatch(context.Background(), notificationFor(receiverID))
	require.NoError(t, err)
	_, err = d.Dispatch(context.Background(), notificationFor(otherID))
	require.NoError(t, err)

	require.Len(t, d.UserLog(receiverID), 2)
	require.Len(t, d.UserLog(otherID), 1)

	d.ClearLog(receiverID)
	require.Empty(t, d.UserLog(receiverID))
	require.Len(t, d.UserLog(otherID), 1)
}

type namedListener struct {
	name   string
	record func(string)
}

func (l *namedListener) Notify(ctx context.Context, n *model.Notification) error {
	l.record(l.name)
	return nil
}
