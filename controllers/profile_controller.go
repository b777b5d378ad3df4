package controllers

import (
	"strconv"
	"time"

	"github.com/Krypton102019/dk-deli/entity"
	"github.com/Krypton102019/dk-deli/pkg/resp"
	"github.com/Krypton102019/dk-deli/store"

	"github.com/gin-gonic/gin"
)

type ProfileController struct{ Store *store.Store }

func NewProfileController(st *store.Store) *ProfileController {
	return &ProfileController{Store: st}
}

// GET /me
func (h *ProfileController) Me(c *gin.Context) {
	u := h.Store.User()
	if u == nil {
		resp.NotFound(c, "no user")
		return
	}
	resp.OK(c, u)
}

// PUT /me
func (h *ProfileController) Update(c *gin.Context) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u := h.Store.User()
	if u == nil {
		resp.NotFound(c, "no user")
		return
	}
	u.Name = body.Name
	h.Store.SetUser(u)
	resp.OK(c, u)
}

// POST /me/addresses
func (h *ProfileController) AddAddress(c *gin.Context) {
	var body struct {
		Label   string `json:"label" binding:"required"`
		Address string `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u := h.Store.User()
	if u == nil {
		resp.NotFound(c, "no user")
		return
	}

	// nanoseconds: two quick adds must not collide on id
	addr := entity.Address{
		ID:      strconv.FormatInt(time.Now().UnixNano(), 10),
		Label:   body.Label,
		Address: body.Address,
		// the very first address becomes the default
		IsDefault: len(u.Addresses) == 0,
	}
	h.Store.AddAddress(addr)
	resp.Created(c, h.Store.User())
}

// DELETE /me/addresses/:id
func (h *ProfileController) RemoveAddress(c *gin.Context) {
	h.Store.RemoveAddress(c.Param("id"))
	resp.OK(c, h.Store.User())
}

// PATCH /me/addresses/:id/default
func (h *ProfileController) SetDefaultAddress(c *gin.Context) {
	h.Store.SetDefaultAddress(c.Param("id"))
	resp.OK(c, h.Store.User())
}
