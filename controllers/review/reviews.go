package reviewcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glowora/cosmetics-api/catalog"
	"github.com/glowora/cosmetics-api/models"
	"gorm.io/gorm"
)

type CreateReviewInput struct {
	UserName  string `json:"userName" binding:"required"`
	UserImage string `json:"userImage"`
	Date      string `json:"date"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required"`
	Category  string `json:"category" binding:"required"`
}

// GET /reviews?category=
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Review{}).Order("created_at desc")
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", catalog.NormalizeCategory(category))
		}

		var reviews []models.Review
		if err := query.Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Date == "" {
			input.Date = time.Now().Format("2006-01-02")
		}

		review := models.Review{
			UserName:  input.UserName,
			UserImage: input.UserImage,
			Date:      input.Date,
			Rating:    input.Rating,
			Comment:   input.Comment,
			Category:  catalog.NormalizeCategory(input.Category),
		}

		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		broadcastNewReview(review)
		c.JSON(http.StatusCreated, review)
	}
}

// DELETE /admin/reviews/:id — moderation.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Review{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
