package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Krypton102019/dk-deli/catalog"
	"github.com/Krypton102019/dk-deli/entity"
	"github.com/Krypton102019/dk-deli/store"
)

const (
	defaultDeliveryFee = 1500
	deliveryEstimate   = 45 * time.Minute
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrMissingFields = errors.New("phone, name and address are required")
)

// CheckoutService turns the current cart into an order: snapshot the lines,
// compute totals, stamp timestamps, prepend to history, then clear the cart.
type CheckoutService struct {
	Store *store.Store
	now   func() time.Time
}

func NewCheckoutService(st *store.Store) *CheckoutService {
	return &CheckoutService{Store: st, now: time.Now}
}

type PlaceOrderIn struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Address string `json:"address" binding:"required"`
	Label   string `json:"label"`
}

func (s *CheckoutService) PlaceOrder(in *PlaceOrderIn) (*entity.Order, error) {
	if strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, ErrMissingFields
	}

	cart := s.Store.Cart()
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now()
	millis := strconv.FormatInt(now.UnixMilli(), 10)

	label := in.Label
	if label == "" {
		label = "Home"
	}
	addr := entity.Address{
		ID:        millis,
		Label:     label,
		Address:   in.Address,
		IsDefault: true,
	}

	order := entity.Order{
		ID:                "ORD-" + millis,
		Items:             cart,
		Total:             s.Store.CartTotal(),
		DeliveryFee:       s.deliveryFee(cart),
		Status:            entity.StatusOrderPlaced,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(deliveryEstimate),
		Address:           addr,
	}

	// first checkout doubles as sign-up; the snapshot address becomes
	// the user's first (and therefore default) address
	if s.Store.User() == nil {
		s.Store.SetUser(&entity.User{
			Phone:     strings.TrimSpace(in.Phone),
			Name:      strings.TrimSpace(in.Name),
			Addresses: []entity.Address{addr},
		})
	}

	s.Store.AddOrder(order)
	s.Store.ClearCart()
	return &order, nil
}

// deliveryFee comes from the restaurant the cart is locked to, with the
// flat city fee as fallback.
func (s *CheckoutService) deliveryFee(cart []entity.CartItem) int64 {
	if len(cart) > 0 {
		if r, ok := catalog.RestaurantByID(cart[0].RestaurantID); ok {
			return r.DeliveryFee
		}
	}
	return defaultDeliveryFee
}
