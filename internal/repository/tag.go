package repository

import (
	"context"
	"errors"

	"blogly/internal/models"

	"gorm.io/gorm"
)

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	UpdateWithPosts(ctx context.Context, tag *models.Tag, posts []models.Post) error
	Delete(ctx context.Context, tag *models.Tag) error
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// GetByID returns the tag with its posts preloaded, or a NotFound error.
func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Preload("Posts").First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

// GetByIDs resolves the given ids to tags. Ids without a matching row are
// silently dropped; this is membership filtering, not a lookup-or-404.
func (r *tagRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

// Create inserts the tag and join rows for any pre-associated posts in one
// transaction. A duplicate name violates the unique constraint and fails.
func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Omit("Posts.*").Create(tag).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateWithPosts overwrites the name and replaces the full post
// association set atomically.
func (r *tagRepository) UpdateWithPosts(ctx context.Context, tag *models.Tag, posts []models.Post) error {
	if posts == nil {
		posts = []models.Post{}
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(tag).Update("name", tag.Name).Error; err != nil {
			return err
		}
		return tx.Model(tag).Association("Posts").Replace(posts)
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	tag.Posts = posts
	return nil
}

// Delete removes the tag row and its join rows only. Posts are untouched.
func (r *tagRepository) Delete(ctx context.Context, tag *models.Tag) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", tag.ID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, tag.ID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
