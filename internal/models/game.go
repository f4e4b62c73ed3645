package models

import (
	"time"

	"gorm.io/gorm"
)

// Maximum lengths for free-text game fields.
const (
	MaxGameTitleLen       = 50
	MaxGameStudioLen      = 50
	MaxGameDescriptionLen = 5000
)

// Game is the root of the Posts -> Comments -> Votes ownership subtree.
// Nothing below a game may outlive it; DeleteGame cascades bottom-up.
type Game struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:50;not null;index" json:"title"`
	Studio      string         `gorm:"size:50;not null" json:"studio"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Rating      float64        `gorm:"not null" json:"rating"`
	ImageURL    string         `json:"image_url"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Category    Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Posts       []Post         `gorm:"foreignKey:GameID" json:"posts,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// GameQueryModel is the flattened read projection for game listings,
// with the category name resolved via join.
type GameQueryModel struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Studio      string  `json:"studio"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
}

// GameModel is the editable shape accepted on create/update and returned
// for edit forms, together with the selectable categories.
type GameModel struct {
	Title       string     `json:"title"`
	Studio      string     `json:"studio"`
	Description string     `json:"description"`
	Rating      float64    `json:"rating"`
	ImageURL    string     `json:"image_url"`
	CategoryID  uint       `json:"category_id"`
	Categories  []Category `json:"categories,omitempty"`
}
