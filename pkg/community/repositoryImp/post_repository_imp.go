package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agrisense/entities"
	"agrisense/pkg/community/repository"
)

type postRepo struct{ db *gorm.DB }

func NewPostRepository(db *gorm.DB) repository.PostRepository { return &postRepo{db} }

func (r *postRepo) Create(ctx context.Context, p *entities.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *postRepo) ListRecent(ctx context.Context, limit int) ([]entities.Post, error) {
	var out []entities.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *postRepo) Increment(ctx context.Context, postID string, c repository.Counter) (*entities.Post, error) {
	if c != repository.Likes && c != repository.Replies {
		return nil, errors.New("unknown counter " + string(c))
	}
	var p entities.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Post{}).
			Where("post_id = ?", postID).
			UpdateColumn(string(c), gorm.Expr(string(c)+" + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return tx.Where("post_id = ?", postID).First(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
