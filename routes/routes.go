package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public, auth,
// user, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public catalog + reviews (no middleware)
	SetupPublicRoutes(r, db)

	// 2️⃣ Auth routes
	SetupAuthRoutes(r, db)

	// 3️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// 4️⃣ Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
