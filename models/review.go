package models

import "time"

// Review is tied to a category token rather than a single product, so one
// review thread covers every product of that type.
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName  string    `gorm:"not null" json:"userName"`
	UserImage string    `json:"userImage"`
	Date      string    `json:"date"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Category  string    `gorm:"index" json:"category"`
	CreatedAt time.Time `json:"-"`
}
