package entity

import (
	"sort"
	"strings"
)

// CartItem is one line of the cart. MenuItem and Toppings are value
// snapshots taken at add time, so later catalog edits never change a cart.
type CartItem struct {
	MenuItem       MenuItem        `json:"menuItem"`
	RestaurantID   string          `json:"restaurantId"`
	RestaurantName string          `json:"restaurantName"`
	Quantity       int             `json:"quantity"`
	Toppings       []ToppingOption `json:"toppings,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// Key is the merge identity of a line: menu + restaurant + the chosen
// topping ids (order-independent) + the exact notes text. Two adds with the
// same key are the same line; anything else is a separate line.
func (ci CartItem) Key() string {
	ids := make([]string, 0, len(ci.Toppings))
	for _, t := range ci.Toppings {
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	return ci.MenuItem.ID + "|" + ci.RestaurantID + "|" + strings.Join(ids, ",") + "|" + ci.Notes
}

// UnitPrice is the base price plus every selected topping.
func (ci CartItem) UnitPrice() int64 {
	p := ci.MenuItem.Price
	for _, t := range ci.Toppings {
		p += t.Price
	}
	return p
}

func (ci CartItem) LineTotal() int64 {
	return ci.UnitPrice() * int64(ci.Quantity)
}
