package models

// Tag labels posts. Names are unique across all tags. Deleting a tag
// removes only the tag and its join rows, never the posts.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Posts []Post `gorm:"many2many:posts_tags" json:"posts,omitempty"`
}

// PostTag is the explicit join model between posts and tags. The composite
// primary key guarantees a (post_id, tag_id) pair appears at most once.
type PostTag struct {
	PostID uint `gorm:"primaryKey" json:"post_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`
}

// TableName keeps the historical join table name.
func (PostTag) TableName() string {
	return "posts_tags"
}
