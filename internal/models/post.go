package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxPostTitleLen bounds post titles.
const MaxPostTitleLen = 100

// Post is a discussion thread under a game.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	GameID  uint   `gorm:"not null;index" json:"game_id"`
	Game    Game   `gorm:"foreignKey:GameID" json:"game,omitempty"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// CommentsCount is not persisted; computed at query time.
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
