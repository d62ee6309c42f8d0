package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glowora/cosmetics-api/catalog"
	"github.com/glowora/cosmetics-api/models"
	"gorm.io/gorm"
)

// PUT /admin/products/:id — full replace.
func ReplaceProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := input.Category
		if category == "" {
			category = input.ProductType
		}
		token := catalog.NormalizeCategory(category)

		product.Name = input.Name
		product.Brand = input.Brand
		product.Price = input.Price
		product.Rating = input.Rating
		product.Image = input.Image
		product.Category = token
		product.ProductType = token
		product.Description = input.Description
		product.Stock = input.Stock

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

type PatchProductInput struct {
	Name        *string  `json:"name"`
	Brand       *string  `json:"brand"`
	Price       *float64 `json:"price"`
	Rating      *float64 `json:"rating"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Stock       *int     `json:"stock"`
}

// PATCH /admin/products/:id — partial update, only the fields present.
func PatchProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input PatchProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Brand != nil {
			updates["brand"] = *input.Brand
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.Rating != nil {
			updates["rating"] = *input.Rating
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Category != nil {
			token := catalog.NormalizeCategory(*input.Category)
			updates["category"] = token
			updates["product_type"] = token
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Stock != nil {
			updates["stock"] = *input.Stock
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}
