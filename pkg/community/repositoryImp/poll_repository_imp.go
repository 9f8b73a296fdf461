package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agrisense/entities"
	"agrisense/pkg/community/repository"
)

type pollRepo struct{ db *gorm.DB }

func NewPollRepository(db *gorm.DB) repository.PollRepository { return &pollRepo{db} }

func (r *pollRepo) Seed(ctx context.Context, p *entities.Poll) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.Poll{}).Where("poll_id = ?", p.PollID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		return tx.Create(p).Error
	})
}

func (r *pollRepo) Current(ctx context.Context) (*entities.Poll, error) {
	var p entities.Poll
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("ord ASC") }).
		Order("created_at DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pollRepo) HasVoted(ctx context.Context, pollID, uid string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.PollVote{}).
		Where("poll_id = ? AND user_id = ?", pollID, uid).
		Count(&n).Error
	return n > 0, err
}

func (r *pollRepo) Vote(ctx context.Context, pollID, uid string, optionID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// the unique (poll_id, user_id) index turns a second vote into a no-op insert
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entities.PollVote{PollID: pollID, UserID: uid, OptionID: optionID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrAlreadyVoted
		}
		upd := tx.Model(&entities.PollOption{}).
			Where("option_id = ? AND poll_id = ?", optionID, pollID).
			UpdateColumn("votes", gorm.Expr("votes + 1"))
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}
