package services

import (
	"sync"
	"time"

	"github.com/Krypton102019/dk-deli/entity"
	"github.com/Krypton102019/dk-deli/store"
)

// StatusUpdate is what subscribers of an order's tracking stream receive.
type StatusUpdate struct {
	OrderID           string             `json:"orderId"`
	Status            entity.OrderStatus `json:"status"`
	EstimatedDelivery time.Time          `json:"estimatedDelivery"`
	At                time.Time          `json:"at"`
}

// StatusPublisher fans a status change out to whoever is watching the order.
type StatusPublisher interface {
	Publish(orderID string, update StatusUpdate)
}

// TrackingService simulates the kitchen and the rider: once an order is
// watched, it walks the status sequence forward on a timer and publishes
// every step. The store enforces that each step is the exact successor.
type TrackingService struct {
	Store *store.Store
	Pub   StatusPublisher

	mu     sync.Mutex
	active map[string]bool

	// delay per current status, overridable in tests
	delayFor func(entity.OrderStatus) time.Duration
}

func NewTrackingService(st *store.Store, pub StatusPublisher) *TrackingService {
	return &TrackingService{
		Store:    st,
		Pub:      pub,
		active:   make(map[string]bool),
		delayFor: progressDelay,
	}
}

func progressDelay(s entity.OrderStatus) time.Duration {
	switch s {
	case entity.StatusOrderPlaced:
		return 3 * time.Second
	case entity.StatusConfirmed:
		return 5 * time.Second
	case entity.StatusPreparing:
		return 10 * time.Second
	default:
		return 15 * time.Second
	}
}

// Watch starts the simulated progression for the order. Watching the same
// order twice, or a finished or unknown order, does nothing.
func (s *TrackingService) Watch(orderID string) {
	o, ok := s.Store.OrderByID(orderID)
	if !ok || o.Status == entity.StatusDelivered {
		return
	}

	s.mu.Lock()
	if s.active[orderID] {
		s.mu.Unlock()
		return
	}
	s.active[orderID] = true
	s.mu.Unlock()

	go s.run(orderID)
}

func (s *TrackingService) run(orderID string) {
	defer func() {
		s.mu.Lock()
		delete(s.active, orderID)
		s.mu.Unlock()
	}()

	for {
		o, ok := s.Store.OrderByID(orderID)
		if !ok {
			return
		}
		next, more := o.Status.Next()
		if !more {
			return
		}

		time.Sleep(s.delayFor(o.Status))

		if err := s.Store.UpdateOrderStatus(orderID, next); err != nil {
			return
		}
		if s.Pub != nil {
			s.Pub.Publish(orderID, StatusUpdate{
				OrderID:           orderID,
				Status:            next,
				EstimatedDelivery: o.EstimatedDelivery,
				At:                time.Now(),
			})
		}
	}
}
