// Package models contains data structures for the application's domain models.
package models

// DefaultImageURL is the placeholder avatar assigned to users created
// without an image URL.
const DefaultImageURL = "https://www.freeiconspng.com/uploads/icon-user-blue-symbol-people-person-generic--public-domain--21.png"

// User is a site user who owns blog posts.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	ImageURL  string `gorm:"not null" json:"image_url"`
	Posts     []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// FullName returns the user's first and last name joined by a space.
// Value receiver so templates can call it on both values and pointers.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
