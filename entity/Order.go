package entity

import "time"

// Order is immutable after placement except for Status.
type Order struct {
	ID                string      `json:"id"`
	Items             []CartItem  `json:"items"`
	Total             int64       `json:"total"` // cart subtotal, fee excluded
	DeliveryFee       int64       `json:"deliveryFee"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"createdAt"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
	Address           Address     `json:"address"`
}

// GrandTotal is what the customer pays: subtotal plus delivery fee.
func (o Order) GrandTotal() int64 {
	return o.Total + o.DeliveryFee
}
