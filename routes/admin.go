package routes

import (
	"github.com/gin-gonic/gin"
	checkoutcontroller "github.com/glowora/cosmetics-api/controllers/checkout"
	productcontroller "github.com/glowora/cosmetics-api/controllers/product"
	reviewcontroller "github.com/glowora/cosmetics-api/controllers/review"
	usercontroller "github.com/glowora/cosmetics-api/controllers/user"
	"github.com/glowora/cosmetics-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", usercontroller.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.ReplaceProduct(db))
			productAdmin.PATCH("/:id", productcontroller.PatchProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Review Moderation ───────────
		adminGroup.DELETE("/reviews/:id", reviewcontroller.DeleteReview(db))

		// ─────────── Orders ───────────
		adminGroup.GET("/orders", checkoutcontroller.GetAllOrders(db))
		adminGroup.GET("/orders/live", checkoutcontroller.OrderWebSocketHandler)
	}
}
