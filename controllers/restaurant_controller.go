package controllers

import (
	"github.com/Krypton102019/dk-deli/catalog"
	"github.com/Krypton102019/dk-deli/pkg/resp"

	"github.com/gin-gonic/gin"
)

// RestaurantController serves the static catalog: browse, search, detail.
type RestaurantController struct{}

func NewRestaurantController() *RestaurantController { return &RestaurantController{} }

// GET /categories
func (h *RestaurantController) Categories(c *gin.Context) {
	resp.OK(c, catalog.Categories())
}

// GET /restaurants?category=&q=&popular=1
func (h *RestaurantController) List(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		resp.OK(c, catalog.SearchRestaurants(q))
		return
	}
	if c.Query("popular") == "1" {
		resp.OK(c, catalog.PopularRestaurants())
		return
	}
	category := c.DefaultQuery("category", "all")
	resp.OK(c, catalog.RestaurantsByCategory(category))
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	r, ok := catalog.RestaurantByID(c.Param("id"))
	if !ok {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, r)
}

// GET /restaurants/:id/menu/:itemId
func (h *RestaurantController) MenuItem(c *gin.Context) {
	m, ok := catalog.MenuItem(c.Param("id"), c.Param("itemId"))
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, m)
}
