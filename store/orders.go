package store

import (
	"errors"

	"github.com/Krypton102019/dk-deli/entity"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrBadTransition = errors.New("invalid status transition")
	ErrUnknownStatus = errors.New("unknown order status")
)

// AddOrder prepends, so Orders() is most-recent-first.
func (s *Store) AddOrder(o entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Orders = append([]entity.Order{o}, s.state.Orders...)
	s.persist()
}

func (s *Store) Orders() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Order, len(s.state.Orders))
	copy(out, s.state.Orders)
	return out
}

func (s *Store) OrderByID(id string) (entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.state.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return entity.Order{}, false
}

// UpdateOrderStatus only accepts the exact successor of the order's current
// status; delivered is terminal. Anything else leaves the order alone and
// returns ErrBadTransition.
func (s *Store) UpdateOrderStatus(orderID string, status entity.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.Valid() {
		return ErrUnknownStatus
	}
	for i := range s.state.Orders {
		if s.state.Orders[i].ID != orderID {
			continue
		}
		next, ok := s.state.Orders[i].Status.Next()
		if !ok || next != status {
			return ErrBadTransition
		}
		s.state.Orders[i].Status = status
		s.persist()
		return nil
	}
	return ErrOrderNotFound
}
