package models

import "time"

// Post is a blog post owned by exactly one user and tagged with any
// number of tags through the posts_tags join table.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Tags      []Tag     `gorm:"many2many:posts_tags" json:"tags,omitempty"`
}

// FriendlyDate returns the creation time formatted for display,
// e.g. "Mon Jan 1 2024, 3:04 PM".
// Value receiver so templates can call it on both values and pointers.
func (p Post) FriendlyDate() string {
	return p.CreatedAt.Format("Mon Jan 2 2006, 3:04 PM")
}
