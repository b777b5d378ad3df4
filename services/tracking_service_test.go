package services

import (
	"sync"
	"testing"
	"time"

	"github.com/Krypton102019/dk-deli/entity"
	"github.com/Krypton102019/dk-deli/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu      sync.Mutex
	updates []StatusUpdate
}

func (p *recordingPublisher) Publish(orderID string, u StatusUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates = append(p.updates, u)
}

func (p *recordingPublisher) statuses() []entity.OrderStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entity.OrderStatus, 0, len(p.updates))
	for _, u := range p.updates {
		out = append(out, u.Status)
	}
	return out
}

func newTrackedOrder(t *testing.T) (*TrackingService, *store.Store, *recordingPublisher) {
	t.Helper()
	st := store.New(nil)
	st.AddOrder(entity.Order{ID: "ORD-1", Status: entity.StatusOrderPlaced})
	pub := &recordingPublisher{}
	svc := NewTrackingService(st, pub)
	svc.delayFor = func(entity.OrderStatus) time.Duration { return time.Millisecond }
	return svc, st, pub
}

func waitForStatus(t *testing.T, st *store.Store, id string, want entity.OrderStatus) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if o, ok := st.OrderByID(id); ok && o.Status == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	o, _ := st.OrderByID(id)
	t.Fatalf("order never reached %s, stuck at %s", want, o.Status)
}

func TestWatchDrivesOrderToDelivered(t *testing.T) {
	svc, st, pub := newTrackedOrder(t)

	svc.Watch("ORD-1")
	waitForStatus(t, st, "ORD-1", entity.StatusDelivered)

	assert.Equal(t, []entity.OrderStatus{
		entity.StatusConfirmed,
		entity.StatusPreparing,
		entity.StatusOnTheWay,
		entity.StatusDelivered,
	}, pub.statuses())
}

func TestWatchUnknownOrderDoesNothing(t *testing.T) {
	svc, _, pub := newTrackedOrder(t)

	svc.Watch("ORD-404")
	time.Sleep(20 * time.Millisecond)

	assert.Empty(t, pub.statuses())
}

func TestWatchDeliveredOrderDoesNothing(t *testing.T) {
	st := store.New(nil)
	st.AddOrder(entity.Order{ID: "ORD-1", Status: entity.StatusDelivered})
	pub := &recordingPublisher{}
	svc := NewTrackingService(st, pub)
	svc.delayFor = func(entity.OrderStatus) time.Duration { return time.Millisecond }

	svc.Watch("ORD-1")
	time.Sleep(20 * time.Millisecond)

	assert.Empty(t, pub.statuses())
}

func TestWatchTwiceRunsOneProgression(t *testing.T) {
	svc, st, pub := newTrackedOrder(t)

	svc.Watch("ORD-1")
	svc.Watch("ORD-1")
	waitForStatus(t, st, "ORD-1", entity.StatusDelivered)
	time.Sleep(20 * time.Millisecond)

	require.Len(t, pub.statuses(), 4)
}

func TestDefaultDelaysMatchTheSimulation(t *testing.T) {
	assert.Equal(t, 3*time.Second, progressDelay(entity.StatusOrderPlaced))
	assert.Equal(t, 5*time.Second, progressDelay(entity.StatusConfirmed))
	assert.Equal(t, 10*time.Second, progressDelay(entity.StatusPreparing))
	assert.Equal(t, 15*time.Second, progressDelay(entity.StatusOnTheWay))
}
