package routes

import (
	"github.com/Krypton102019/dk-deli/configs"
	"github.com/Krypton102019/dk-deli/controllers"
	"github.com/Krypton102019/dk-deli/middlewares"
	"github.com/Krypton102019/dk-deli/services"
	"github.com/Krypton102019/dk-deli/store"
	"github.com/Krypton102019/dk-deli/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, cfg *configs.Config, hub *ws.TrackHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Services
	authSvc := services.NewAuthService(st, cfg.JWTSecret, cfg.JWTTTL)
	checkoutSvc := services.NewCheckoutService(st)
	trackSvc := services.NewTrackingService(st, hub)
	hub.SetTracker(trackSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController()
	cartCtrl := controllers.NewCartController(st)
	profileCtrl := controllers.NewProfileController(st)
	orderCtrl := controllers.NewOrderController(st, checkoutSvc, trackSvc)
	appCtrl := controllers.NewAppController(st)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	a.POST("/logout", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Logout)

	// Catalog (public)
	r.GET("/categories", restCtrl.Categories)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu/:itemId", restCtrl.MenuItem)

	// Cart
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/qty", cartCtrl.UpdateQty)
		cart.PATCH("/items/:index", cartCtrl.UpdateItem)
		cart.PATCH("/items/:index/qty", cartCtrl.UpdateQtyAt)
		cart.DELETE("/items/:index", cartCtrl.RemoveAt)
		cart.DELETE("/menu/:menuItemId", cartCtrl.RemoveByMenuItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Profile
	me := r.Group("/me", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		me.GET("", profileCtrl.Me)
		me.PUT("", profileCtrl.Update)
		me.POST("/addresses", profileCtrl.AddAddress)
		me.DELETE("/addresses/:id", profileCtrl.RemoveAddress)
		me.PATCH("/addresses/:id/default", profileCtrl.SetDefaultAddress)
	}

	// Orders
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/checkout", orderCtrl.PlaceOrder)
		u.GET("/orders", orderCtrl.List)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
	}

	// App flags
	app := r.Group("/app", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		app.GET("/flags", appCtrl.Flags)
		app.POST("/onboarding-seen", appCtrl.OnboardingSeen)
		app.POST("/dark-mode/toggle", appCtrl.ToggleDarkMode)
	}

	// Order tracking stream
	r.GET("/ws/orders/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
