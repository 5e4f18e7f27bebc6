// Package seed creates demo data for development and testing.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"blogly/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much demo data Run creates.
type Options struct {
	Users        int
	PostsPerUser int
	Tags         int
	// MaxDays spreads post creation times over this many days back.
	MaxDays int
}

// DefaultOptions is a small but representative data set.
var DefaultOptions = Options{
	Users:        5,
	PostsPerUser: 3,
	Tags:         8,
	MaxDays:      90,
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand

	usedTagNames map[string]bool
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:           db,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		usedTagNames: make(map[string]bool),
	}
}

// CreateUser persists a fake user. Roughly one in four gets the default
// placeholder image, matching how real sign-ups skip the field.
func (f *Factory) CreateUser() (*models.User, error) {
	user := &models.User{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		ImageURL:  fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
	}
	if f.rng.Intn(4) == 0 {
		user.ImageURL = models.DefaultImageURL
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTag persists a fake tag with a name unique within this factory run.
func (f *Factory) CreateTag() (*models.Tag, error) {
	name := f.uniqueTagName()
	tag := &models.Tag{Name: name}
	if err := f.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// CreatePost persists a fake post for user, tagged with tags, created at a
// random point within the last maxDays days.
func (f *Factory) CreatePost(user *models.User, tags []models.Tag, maxDays int) (*models.Post, error) {
	if maxDays <= 0 {
		maxDays = 90
	}
	back := time.Duration(f.rng.Intn(maxDays*24*60)) * time.Minute

	post := &models.Post{
		Title:     gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:    user.ID,
		Tags:      tags,
		CreatedAt: time.Now().Add(-back),
	}
	if err := f.db.Omit("Tags.*").Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (f *Factory) uniqueTagName() string {
	for {
		name := strings.ToLower(gofakeit.BuzzWord())
		if len(name) > 50 {
			name = name[:50]
		}
		if !f.usedTagNames[name] {
			f.usedTagNames[name] = true
			return name
		}
	}
}

// Run populates the database with opts worth of users, tags and posts.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	tags := make([]models.Tag, 0, opts.Tags)
	for i := 0; i < opts.Tags; i++ {
		tag, err := f.CreateTag()
		if err != nil {
			return fmt.Errorf("seed tag: %w", err)
		}
		tags = append(tags, *tag)
	}

	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		for j := 0; j < opts.PostsPerUser; j++ {
			if _, err := f.CreatePost(user, f.pickTags(tags), opts.MaxDays); err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
		}
	}
	return nil
}

// pickTags selects a random subset of up to three tags.
func (f *Factory) pickTags(tags []models.Tag) []models.Tag {
	if len(tags) == 0 {
		return nil
	}
	n := f.rng.Intn(4)
	if n > len(tags) {
		n = len(tags)
	}
	picked := make([]models.Tag, 0, n)
	for _, idx := range f.rng.Perm(len(tags))[:n] {
		picked = append(picked, tags[idx])
	}
	return picked
}
