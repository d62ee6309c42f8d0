package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glowora/cosmetics-api/catalog"
	"github.com/glowora/cosmetics-api/models"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Rating      float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	ProductType string  `json:"product_type"`
	Description string  `json:"description"`
	Stock       int     `json:"stock" binding:"omitempty,min=0"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Clients send "category" or "product_type" interchangeably; store
		// one canonical token.
		category := input.Category
		if category == "" {
			category = input.ProductType
		}
		token := catalog.NormalizeCategory(category)

		product := models.Product{
			Name:        input.Name,
			Brand:       input.Brand,
			Price:       input.Price,
			Rating:      input.Rating,
			Image:       input.Image,
			Category:    token,
			ProductType: token,
			Description: input.Description,
			Stock:       input.Stock,
			Source:      "db",
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
