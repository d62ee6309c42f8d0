package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/glowora/cosmetics-api/controllers/product"
	reviewcontroller "github.com/glowora/cosmetics-api/controllers/review"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the endpoints the storefront browses without
// signing in: the managed catalog reads and the review threads.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	r.GET("/reviews", reviewcontroller.GetReviews(db))
	r.POST("/reviews", reviewcontroller.CreateReview(db))
	r.GET("/reviews/live", reviewcontroller.ReviewWebSocketHandler)
}
