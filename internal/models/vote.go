package models

import "time"

// VoteType is the direction of a vote on a comment.
type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

// Valid reports whether t is a known vote type.
func (t VoteType) Valid() bool {
	return t == VoteUp || t == VoteDown
}

// Vote records a single user's vote on a comment.
// The combination of UserID and CommentID must be unique; casting again
// updates the existing vote's type.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      VoteType  `gorm:"size:8;not null" json:"type"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_comment" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_user_comment" json:"comment_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comment   Comment   `gorm:"foreignKey:CommentID" json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
