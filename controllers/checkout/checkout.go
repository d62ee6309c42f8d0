package checkoutcontroller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glowora/cosmetics-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The client-side cart lives in device storage, so checkout submits its
// lines rather than reading a server-side cart.
type CheckoutLine struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	Items         []CheckoutLine `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string         `json:"payment_method" binding:"required"`
}

// settlePayment simulates the payment provider: card charges settle
// immediately, cash on delivery stays pending until handover.
func settlePayment(method string) (models.PaymentStatus, error) {
	switch strings.ToLower(method) {
	case "card":
		return models.PaymentStatusPaid, nil
	case "cod":
		return models.PaymentStatusPending, nil
	default:
		return "", errors.New("unsupported payment method")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// POST /user/checkout
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		paymentStatus, err := settlePayment(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order := models.Order{
			Ref:           generateOrderRef(),
			UserID:        userID,
			Status:        models.OrderStatusPending,
			PaymentStatus: paymentStatus,
			PaymentMethod: strings.ToLower(req.PaymentMethod),
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			for _, line := range req.Items {
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, "id = ?", line.ProductID).Error; err != nil {
					return errors.New("product not found")
				}

				if product.Stock < line.Quantity {
					return errors.New("insufficient stock for product: " + product.Name)
				}

				product.Stock -= line.Quantity
				if err := tx.Save(&product).Error; err != nil {
					return err
				}

				order.Items = append(order.Items, models.OrderItem{
					ProductID:    product.ID,
					ProductName:  product.Name,
					ProductImage: product.Image,
					Price:        product.Price,
					Quantity:     line.Quantity,
				})
				order.TotalAmount += product.Price * float64(line.Quantity)
			}

			return tx.Create(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at desc").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").
			Order("created_at desc").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
