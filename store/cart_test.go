package store

import (
	"testing"

	"github.com/Krypton102019/dk-deli/entity"
	"github.com/stretchr/testify/assert"
)

func mohinga() entity.MenuItem {
	return entity.MenuItem{
		ID:    "m1-1",
		Name:  "Mohinga",
		Price: 2500,
		Toppings: []entity.ToppingOption{
			{ID: "extra-fish", Name: "Extra Fish Cake", Price: 500},
			{ID: "extra-egg", Name: "Extra Boiled Egg", Price: 300},
		},
	}
}

func fishTopping() []entity.ToppingOption {
	return []entity.ToppingOption{{ID: "extra-fish", Name: "Extra Fish Cake", Price: 500}}
}

func TestAddToCartMergesIdenticalLines(t *testing.T) {
	s := New(nil)

	s.AddToCart(mohinga(), "r1", "Golden Rice", fishTopping(), "no cilantro")
	s.AddToCart(mohinga(), "r1", "Golden Rice", fishTopping(), "no cilantro")

	cart := s.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestAddToCartDifferentNotesStayDistinct(t *testing.T) {
	s := New(nil)

	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "")
	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "extra spicy")

	cart := s.Cart()
	assert.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestAddToCartToppingOrderDoesNotMatter(t *testing.T) {
	s := New(nil)
	fish := entity.ToppingOption{ID: "extra-fish", Price: 500}
	egg := entity.ToppingOption{ID: "extra-egg", Price: 300}

	s.AddToCart(mohinga(), "r1", "Golden Rice", []entity.ToppingOption{fish, egg}, "")
	s.AddToCart(mohinga(), "r1", "Golden Rice", []entity.ToppingOption{egg, fish}, "")

	assert.Len(t, s.Cart(), 1)
	assert.Equal(t, 2, s.Cart()[0].Quantity)
}

func TestAddToCartDifferentRestaurantStaysDistinct(t *testing.T) {
	s := New(nil)

	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "")
	s.AddToCart(mohinga(), "r2", "Shan Hills", nil, "")

	assert.Len(t, s.Cart(), 2)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		qty       int
		wantLines int
		wantQty   int
	}{
		{name: "zero removes the line", qty: 0, wantLines: 0},
		{name: "negative removes the line", qty: -1, wantLines: 0},
		{name: "positive sets it exactly", qty: 3, wantLines: 1, wantQty: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "")

			s.UpdateQuantity("m1-1", tt.qty)

			cart := s.Cart()
			assert.Len(t, cart, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, cart[0].Quantity)
			}
		})
	}
}

func TestUpdateQuantityLeavesOtherLinesAlone(t *testing.T) {
	s := New(nil)
	other := entity.MenuItem{ID: "m2-1", Price: 2800}

	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "")
	s.AddToCart(other, "r2", "Shan Hills", nil, "")

	s.UpdateQuantity("m1-1", 3)

	cart := s.Cart()
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestUpdateQuantityUnknownItemIsNoop(t *testing.T) {
	s := New(nil)
	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "")

	s.UpdateQuantity("nope", 5)

	assert.Equal(t, 1, s.Cart()[0].Quantity)
}

func TestUpdateQuantityAt(t *testing.T) {
	s := New(nil)
	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "a")
	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "b")

	s.UpdateQuantityAt(1, 4)
	assert.Equal(t, 1, s.Cart()[0].Quantity)
	assert.Equal(t, 4, s.Cart()[1].Quantity)

	s.UpdateQuantityAt(0, 0)
	assert.Len(t, s.Cart(), 1)
	assert.Equal(t, "b", s.Cart()[0].Notes)

	s.UpdateQuantityAt(99, 2) // out of range: no-op
	assert.Len(t, s.Cart(), 1)
}

func TestCartTotalWithToppings(t *testing.T) {
	s := New(nil)

	s.AddToCart(mohinga(), "r1", "Golden Rice", fishTopping(), "")
	s.UpdateQuantity("m1-1", 2)

	// (2500 + 500) x 2
	assert.Equal(t, int64(6000), s.CartTotal())
}

func TestCartItemCountSumsQuantities(t *testing.T) {
	s := New(nil)
	other := entity.MenuItem{ID: "m2-1", Price: 2800}

	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "")
	s.UpdateQuantity("m1-1", 2)
	s.AddToCart(other, "r2", "Shan Hills", nil, "")
	s.UpdateQuantity("m2-1", 3)

	assert.Equal(t, 5, s.CartItemCount())
}

func TestClearCart(t *testing.T) {
	s := New(nil)
	s.AddToCart(mohinga(), "r1", "Golden Rice", fishTopping(), "")

	s.ClearCart()

	assert.Empty(t, s.Cart())
	assert.Equal(t, int64(0), s.CartTotal())
	assert.Equal(t, 0, s.CartItemCount())
}

func TestRemoveCartItemByIndex(t *testing.T) {
	s := New(nil)
	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "a")
	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "b")

	s.RemoveCartItemByIndex(0)
	assert.Len(t, s.Cart(), 1)
	assert.Equal(t, "b", s.Cart()[0].Notes)

	// out of bounds leaves the cart unchanged
	s.RemoveCartItemByIndex(5)
	s.RemoveCartItemByIndex(-1)
	assert.Len(t, s.Cart(), 1)
}

func TestRemoveFromCartDropsEveryVariant(t *testing.T) {
	s := New(nil)
	other := entity.MenuItem{ID: "m2-1", Price: 2800}

	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "a")
	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "b")
	s.AddToCart(other, "r2", "Shan Hills", nil, "")

	s.RemoveFromCart("m1-1")

	cart := s.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, "m2-1", cart[0].MenuItem.ID)
}

func TestUpdateCartItemDoesNotRemerge(t *testing.T) {
	s := New(nil)
	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "plain")
	s.AddToCart(mohinga(), "r1", "Golden Rice", nil, "edited")

	// make line 0 identical to line 1; they must stay separate lines
	s.UpdateCartItem(0, nil, "edited")

	cart := s.Cart()
	assert.Len(t, cart, 2)
	assert.Equal(t, "edited", cart[0].Notes)
	assert.Equal(t, 1, cart[0].Quantity)

	// out of range: no-op
	s.UpdateCartItem(7, fishTopping(), "x")
	assert.Len(t, s.Cart(), 2)
}
