package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the shop
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping

	PaymentStatusPending PaymentStatus = "pending" // payment not completed yet
	PaymentStatusPaid    PaymentStatus = "paid"    // simulated payment succeeded
	PaymentStatusFailed  PaymentStatus = "failed"  // simulated payment declined
)

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Ref           string        `gorm:"uniqueIndex" json:"ref"`
	UserID        string        `gorm:"not null" json:"user_id"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod string        `json:"payment_method"` // "card" or "cod"
	CreatedAt     time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"-"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}
