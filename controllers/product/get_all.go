package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/glowora/cosmetics-api/catalog"
	"github.com/glowora/cosmetics-api/models"
	"gorm.io/gorm"
)

// Sortable columns; anything else falls back to created_at.
var sortColumns = map[string]bool{
	"name":       true,
	"price":      true,
	"rating":     true,
	"created_at": true,
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !sortColumns[sortBy] {
			sortBy = "created_at"
		}

		query := db.Model(&models.Product{})

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"name ILIKE ? OR brand ILIKE ? OR description ILIKE ?",
				likePattern, likePattern, likePattern,
			)
		}

		if category != "" {
			query = query.Where("category = ?", catalog.NormalizeCategory(category))
		}

		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		var products []models.Product
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
