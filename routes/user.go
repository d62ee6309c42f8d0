package routes

import (
	"github.com/gin-gonic/gin"
	checkoutcontroller "github.com/glowora/cosmetics-api/controllers/checkout"
	usercontroller "github.com/glowora/cosmetics-api/controllers/user"
	"github.com/glowora/cosmetics-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", usercontroller.GetUser(db))    // GET /user/
		userGroup.PUT("/", usercontroller.UpdateUser(db)) // PUT /user/

		// ──────────────── Checkout ────────────────
		userGroup.POST("/checkout", checkoutcontroller.PlaceOrder(db)) // POST /user/checkout
		userGroup.GET("/orders", checkoutcontroller.GetUserOrders(db)) // GET /user/orders
	}
}
