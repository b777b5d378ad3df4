package controllers

import (
	"strconv"

	"github.com/Krypton102019/dk-deli/catalog"
	"github.com/Krypton102019/dk-deli/entity"
	"github.com/Krypton102019/dk-deli/pkg/resp"
	"github.com/Krypton102019/dk-deli/store"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Store *store.Store }

func NewCartController(st *store.Store) *CartController { return &CartController{Store: st} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, gin.H{
		"items":    h.Store.Cart(),
		"subtotal": h.Store.CartTotal(),
		"count":    h.Store.CartItemCount(),
	})
}

type addToCartIn struct {
	RestaurantID string   `json:"restaurantId" binding:"required"`
	MenuItemID   string   `json:"menuItemId" binding:"required"`
	ToppingIDs   []string `json:"toppingIds"`
	Notes        string   `json:"notes"`
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req addToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if len(req.Notes) > 200 {
		resp.BadRequest(c, "notes too long")
		return
	}

	r, ok := catalog.RestaurantByID(req.RestaurantID)
	if !ok {
		resp.NotFound(c, "restaurant not found")
		return
	}
	item, ok := catalog.MenuItem(req.RestaurantID, req.MenuItemID)
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}

	// only toppings the item actually offers, snapshot by value
	var toppings []entity.ToppingOption
	for _, id := range req.ToppingIDs {
		found := false
		for _, t := range item.Toppings {
			if t.ID == id {
				toppings = append(toppings, t)
				found = true
				break
			}
		}
		if !found {
			resp.BadRequest(c, "invalid topping: "+id)
			return
		}
	}

	h.Store.AddToCart(item, r.ID, r.Name, toppings, req.Notes)
	resp.Created(c, gin.H{"count": h.Store.CartItemCount()})
}

// PATCH /cart/qty  — the documented matching by menu item id
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		MenuItemID string `json:"menuItemId" binding:"required"`
		Quantity   int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Store.UpdateQuantity(body.MenuItemID, body.Quantity)
	resp.OK(c, gin.H{"count": h.Store.CartItemCount()})
}

// PATCH /cart/items/:index/qty
func (h *CartController) UpdateQtyAt(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		resp.BadRequest(c, "invalid index")
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Store.UpdateQuantityAt(index, body.Quantity)
	resp.OK(c, gin.H{"count": h.Store.CartItemCount()})
}

// PATCH /cart/items/:index  — edit toppings/notes in place, no re-merge
func (h *CartController) UpdateItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		resp.BadRequest(c, "invalid index")
		return
	}
	var body struct {
		ToppingIDs []string `json:"toppingIds"`
		Notes      string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if len(body.Notes) > 200 {
		resp.BadRequest(c, "notes too long")
		return
	}

	cart := h.Store.Cart()
	if index < 0 || index >= len(cart) {
		// stale index from the UI: same no-op contract as the store
		resp.OK(c, gin.H{"count": h.Store.CartItemCount()})
		return
	}
	line := cart[index]
	var toppings []entity.ToppingOption
	for _, id := range body.ToppingIDs {
		found := false
		for _, t := range line.MenuItem.Toppings {
			if t.ID == id {
				toppings = append(toppings, t)
				found = true
				break
			}
		}
		if !found {
			resp.BadRequest(c, "invalid topping: "+id)
			return
		}
	}

	h.Store.UpdateCartItem(index, toppings, body.Notes)
	resp.OK(c, gin.H{"count": h.Store.CartItemCount()})
}

// DELETE /cart/menu/:menuItemId  — removes every variant of the item
func (h *CartController) RemoveByMenuItem(c *gin.Context) {
	h.Store.RemoveFromCart(c.Param("menuItemId"))
	resp.OK(c, gin.H{"count": h.Store.CartItemCount()})
}

// DELETE /cart/items/:index
func (h *CartController) RemoveAt(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		resp.BadRequest(c, "invalid index")
		return
	}
	h.Store.RemoveCartItemByIndex(index)
	resp.OK(c, gin.H{"count": h.Store.CartItemCount()})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Store.ClearCart()
	resp.OK(c, gin.H{"count": 0})
}
