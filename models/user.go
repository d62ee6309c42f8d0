package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar"`
	Provider     string    `json:"provider"`
	PasswordHash string    `json:"-"`
	Orders       []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
