package repository

import (
	"context"
	"errors"

	"agrisense/entities"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrAlreadyVoted = errors.New("already voted")
)

// Counter names a post counter that can be incremented.
type Counter string

const (
	Likes   Counter = "like_count"
	Replies Counter = "reply_count"
)

type PostRepository interface {
	Create(ctx context.Context, p *entities.Post) error
	// ListRecent returns newest first.
	ListRecent(ctx context.Context, limit int) ([]entities.Post, error)
	// Increment adds one to the counter and returns the updated post.
	Increment(ctx context.Context, postID string, c Counter) (*entities.Post, error)
}

type PollRepository interface {
	// Seed stores p unless a poll with the same id exists.
	Seed(ctx context.Context, p *entities.Poll) error
	// Current returns the newest poll with options in display order.
	Current(ctx context.Context) (*entities.Poll, error)
	HasVoted(ctx context.Context, pollID, uid string) (bool, error)
	// Vote records the user's vote and bumps the option counter atomically.
	Vote(ctx context.Context, pollID, uid string, optionID uint) error
}
