package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a managed-catalog entry. Records created through the API carry
// Source = "db"; the static feed never writes here.
type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null;index" json:"name"`
	Brand       string         `json:"brand"`
	Price       float64        `json:"price"`
	Rating      float64        `json:"rating"`
	Image       string         `json:"image"`
	Category    string         `gorm:"index" json:"category"`
	ProductType string         `json:"product_type"`
	Description string         `json:"description"`
	Stock       int            `json:"stock"`
	Source      string         `gorm:"default:db" json:"source"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
