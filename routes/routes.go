package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bctDaGithub/orchid-storefront/cart"
	"github.com/bctDaGithub/orchid-storefront/checkout"
	"github.com/bctDaGithub/orchid-storefront/clients"
	"github.com/bctDaGithub/orchid-storefront/controllers"
	"github.com/bctDaGithub/orchid-storefront/events"
	"github.com/bctDaGithub/orchid-storefront/middleware"
	"github.com/bctDaGithub/orchid-storefront/session"
	"github.com/bctDaGithub/orchid-storefront/store"
)

// Register wires every storefront screen onto the router.
func Register(
	r *gin.Engine,
	kv store.KV,
	bus *events.Bus,
	api *clients.Client,
	log *zap.Logger,
) {
	sessions := session.NewManager(kv, log)
	carts := cart.NewStore(kv, bus, log)
	badge := cart.NewBadgeCounter(carts, bus)
	orchestrator := checkout.NewOrchestrator(sessions, carts, api, log)

	auth := controllers.NewAuthController(sessions, api, log)
	orchids := controllers.NewOrchidController(api, sessions)
	carts2 := controllers.NewCartController(carts, badge, api, sessions, log)
	check := controllers.NewCheckoutController(orchestrator)
	orders := controllers.NewOrderController(api, sessions, log)
	admin := controllers.NewAdminController(api, sessions, log)

	r.Use(middleware.ClientID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public screens
	r.POST("/auth/login", auth.Login)
	r.POST("/auth/register", auth.Register)
	r.POST("/auth/logout", auth.Logout)
	r.GET("/orchids", orchids.List)
	r.GET("/orchids/:id", orchids.Detail)

	// Cart lives client-side; no login needed until checkout.
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", carts2.Get)
		cartGroup.GET("/count", carts2.Count)
		cartGroup.POST("/items", carts2.Add)
		cartGroup.PUT("/items/:orchid_id", carts2.SetQuantity)
		cartGroup.DELETE("/items/:orchid_id", carts2.Remove)
		cartGroup.DELETE("", carts2.Clear)
	}

	// Checkout enforces its own session gate so the failure message and
	// untouched cart match the gate sequence exactly.
	r.POST("/checkout", check.PlaceOrder)

	// Logged-in screens
	account := r.Group("/account")
	account.Use(middleware.RequireSession(sessions))
	{
		account.GET("/profile", auth.Profile)
		account.PUT("/profile", auth.UpdateProfile)
	}

	tracking := r.Group("/orders")
	tracking.Use(middleware.RequireSession(sessions), middleware.RequireCapability(session.CapTrackOrders))
	{
		tracking.GET("", orders.MyOrders)
		tracking.PUT("/:id/cancel", orders.Cancel)
	}

	// Admin panels
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireSession(sessions))
	{
		users := adminGroup.Group("/users", middleware.RequireCapability(session.CapManageUsers))
		{
			users.GET("", admin.Users)
			users.PUT("/:id/block", admin.BlockUser)
			users.PUT("/:id/unblock", admin.UnblockUser)
		}

		orchidAdmin := adminGroup.Group("/orchids", middleware.RequireCapability(session.CapManageOrchids))
		{
			orchidAdmin.POST("", admin.CreateOrchid)
			orchidAdmin.PUT("/:id", admin.UpdateOrchid)
			orchidAdmin.PUT("/:id/enable", admin.EnableOrchid)
			orchidAdmin.PUT("/:id/disable", admin.DisableOrchid)
		}

		orderAdmin := adminGroup.Group("/orders", middleware.RequireCapability(session.CapManageOrders))
		{
			orderAdmin.GET("", admin.AllOrders)
			orderAdmin.PUT("/:id/status", admin.UpdateOrderStatus)
		}
	}
}
