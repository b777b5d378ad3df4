package controllers

import (
	"errors"

	"github.com/Krypton102019/dk-deli/entity"
	"github.com/Krypton102019/dk-deli/pkg/resp"
	"github.com/Krypton102019/dk-deli/services"
	"github.com/Krypton102019/dk-deli/store"
	"github.com/Krypton102019/dk-deli/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Store    *store.Store
	Checkout *services.CheckoutService
	Tracker  *services.TrackingService
}

func NewOrderController(st *store.Store, co *services.CheckoutService, tr *services.TrackingService) *OrderController {
	return &OrderController{Store: st, Checkout: co, Tracker: tr}
}

// POST /checkout
func (h *OrderController) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// contact details default to the logged-in identity
	if req.Phone == "" {
		req.Phone = utils.CurrentPhone(c)
	}
	if req.Name == "" {
		req.Name = utils.CurrentName(c)
	}

	order, err := h.Checkout.PlaceOrder(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) || errors.Is(err, services.ErrMissingFields) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	// kick the simulated progression off right away
	h.Tracker.Watch(order.ID)

	resp.Created(c, gin.H{
		"order":      order,
		"grandTotal": order.GrandTotal(),
	})
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	resp.OK(c, h.Store.Orders())
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	o, ok := h.Store.OrderByID(c.Param("id"))
	if !ok {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, gin.H{"order": o, "grandTotal": o.GrandTotal()})
}

// PATCH /orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	var body struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := h.Store.UpdateOrderStatus(c.Param("id"), body.Status)
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, store.ErrBadTransition), errors.Is(err, store.ErrUnknownStatus):
		resp.Conflict(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		o, _ := h.Store.OrderByID(c.Param("id"))
		resp.OK(c, o)
	}
}
