package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/progedu/secretboard/internal/domain"
	"github.com/progedu/secretboard/internal/infrastructure/database/models"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// List returns every post ordered by id descending. The order is a
// strict total order on id, stable even when timestamps collide.
func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	var records []models.Post
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, "PostRepository.List")
	}

	posts := make([]domain.Post, 0, len(records))
	for _, record := range records {
		posts = append(posts, toDomain(record))
	}
	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, content, trackingCookie, postedBy string) (domain.Post, error) {
	record := models.Post{
		Content:        content,
		TrackingCookie: trackingCookie,
		PostedBy:       postedBy,
	}

	err := r.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		return domain.Post{}, errors.Wrap(err, "PostRepository.Create")
	}
	return toDomain(record), nil
}

func (r *PostRepository) Find(ctx context.Context, id uint) (domain.Post, error) {
	var record models.Post
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Post{}, domain.NotFoundError{Resource: "post"}
		}
		return domain.Post{}, errors.Wrap(err, "PostRepository.Find")
	}
	return toDomain(record), nil
}

func (r *PostRepository) Delete(ctx context.Context, post domain.Post) error {
	err := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", post.ID).Error
	if err != nil {
		return errors.Wrap(err, "PostRepository.Delete")
	}
	return nil
}

func toDomain(record models.Post) domain.Post {
	return domain.Post{
		ID:             record.ID,
		Content:        record.Content,
		PostedBy:       record.PostedBy,
		TrackingCookie: record.TrackingCookie,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}
