package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxCommentContentLen bounds comment bodies.
const MaxCommentContentLen = 2000

// Comment is a reply under a post. The comment row is the single source
// of truth for both "comments by post" and "comments by user"; those
// views are derived via indexed queries, never duplicated collections.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"size:2000;not null" json:"content"`
	PostID  uint   `gorm:"not null;index" json:"post_id"`
	Post    Post   `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// LikesCount is not persisted; up votes minus down votes, computed at query time.
	LikesCount int            `gorm:"->" json:"likes_count"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// CommentQueryModel is the flattened read projection for comment listings,
// with the author username resolved via join.
type CommentQueryModel struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	PostID     uint      `json:"post_id"`
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	LikesCount int       `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommentModel is the editable shape accepted on create/update.
type CommentModel struct {
	Content string `json:"content"`
	PostID  uint   `json:"post_id"`
}
