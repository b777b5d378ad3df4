package entity

type OrderStatus string

const (
	StatusOrderPlaced OrderStatus = "order_placed"
	StatusConfirmed   OrderStatus = "confirmed"
	StatusPreparing   OrderStatus = "preparing"
	StatusOnTheWay    OrderStatus = "on_the_way"
	StatusDelivered   OrderStatus = "delivered"
)

// Next returns the successor in the fixed lifecycle. delivered is terminal,
// so Next reports ok=false there (and for anything unknown).
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusOrderPlaced:
		return StatusConfirmed, true
	case StatusConfirmed:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusOnTheWay, true
	case StatusOnTheWay:
		return StatusDelivered, true
	default:
		return "", false
	}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusOrderPlaced, StatusConfirmed, StatusPreparing, StatusOnTheWay, StatusDelivered:
		return true
	}
	return false
}
