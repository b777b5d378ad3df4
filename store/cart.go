package store

import "github.com/Krypton102019/dk-deli/entity"

// AddToCart merges into an existing line when menu item, restaurant,
// topping set and notes all match exactly (see entity.CartItem.Key),
// otherwise appends a new line with quantity 1. Always succeeds.
func (s *Store) AddToCart(item entity.MenuItem, restaurantID, restaurantName string, toppings []entity.ToppingOption, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := entity.CartItem{
		MenuItem:       item,
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
		Quantity:       1,
		Toppings:       toppings,
		Notes:          notes,
	}
	key := line.Key()
	for i := range s.state.Cart {
		if s.state.Cart[i].Key() == key {
			s.state.Cart[i].Quantity++
			s.persist()
			return
		}
	}
	s.state.Cart = append(s.state.Cart, line)
	s.persist()
}

// RemoveFromCart drops every line for the given menu item, whatever the
// restaurant or customization.
func (s *Store) RemoveFromCart(menuItemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Cart[:0]
	for _, it := range s.state.Cart {
		if it.MenuItem.ID != menuItemID {
			kept = append(kept, it)
		}
	}
	s.state.Cart = kept
	s.persist()
}

// RemoveCartItemByIndex is a no-op for an out-of-range index; stale indices
// from an already re-rendered list must not crash anything.
func (s *Store) RemoveCartItemByIndex(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.Cart) {
		return
	}
	s.state.Cart = append(s.state.Cart[:index], s.state.Cart[index+1:]...)
	s.persist()
}

// UpdateQuantity sets the quantity on the first line matching the menu item
// id; quantity <= 0 removes the line. Matching by menu item id alone is the
// documented behavior even when the same item sits in the cart under two
// customizations; UpdateQuantityAt is the precise variant.
func (s *Store) UpdateQuantity(menuItemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Cart {
		if s.state.Cart[i].MenuItem.ID != menuItemID {
			continue
		}
		if quantity <= 0 {
			s.state.Cart = append(s.state.Cart[:i], s.state.Cart[i+1:]...)
		} else {
			s.state.Cart[i].Quantity = quantity
		}
		s.persist()
		return
	}
}

// UpdateQuantityAt applies the same rules to the line at index. Out-of-range
// is a no-op.
func (s *Store) UpdateQuantityAt(index, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.Cart) {
		return
	}
	if quantity <= 0 {
		s.state.Cart = append(s.state.Cart[:index], s.state.Cart[index+1:]...)
	} else {
		s.state.Cart[index].Quantity = quantity
	}
	s.persist()
}

// UpdateCartItem replaces toppings and notes of the line at index in place.
// The edited line is deliberately not re-merged with an equivalent line.
func (s *Store) UpdateCartItem(index int, toppings []entity.ToppingOption, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.state.Cart) {
		return
	}
	s.state.Cart[index].Toppings = toppings
	s.state.Cart[index].Notes = notes
	s.persist()
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Cart = nil
	s.persist()
}

// CartTotal is the subtotal over all lines, delivery fee excluded.
func (s *Store) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, it := range s.state.Cart {
		total += it.LineTotal()
	}
	return total
}

// CartItemCount sums quantities across lines (the cart badge number).
func (s *Store) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, it := range s.state.Cart {
		count += it.Quantity
	}
	return count
}

// Cart returns a copy of the lines in insertion order.
func (s *Store) Cart() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.CartItem, len(s.state.Cart))
	copy(out, s.state.Cart)
	return out
}
