package models

import "time"

// Category is a classification label attached to games, used for filtering.
// Categories are referenced by games, never owned: deleting a category is
// not supported through the services.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
