package repository

import (
	"context"
	"errors"

	"blogly/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	Recent(ctx context.Context, limit int) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	UpdateWithTags(ctx context.Context, post *models.Post, tags []models.Tag) error
	Delete(ctx context.Context, post *models.Post) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// GetByID returns the post with its owner and tags preloaded, or a NotFound error.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("User").Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// GetByIDs resolves the given ids to posts. Ids without a matching row are
// silently dropped; this is membership filtering, not a lookup-or-404.
func (r *postRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var posts []models.Post
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Recent returns at most limit posts, newest first.
func (r *postRepository) Recent(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Tags").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Create inserts the post row and join rows for any attached tags in one
// transaction. Attached tags must already exist.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Omit("Tags.*").Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateWithTags overwrites title and content and replaces the full tag
// association set atomically.
func (r *postRepository) UpdateWithTags(ctx context.Context, post *models.Post, tags []models.Tag) error {
	if tags == nil {
		tags = []models.Tag{}
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
		}
		if err := tx.Model(post).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Model(post).Association("Tags").Replace(tags)
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	post.Tags = tags
	return nil
}

// Delete removes the post row and its join rows. The owning user and any
// referenced tags are left intact.
func (r *postRepository) Delete(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, post.ID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
