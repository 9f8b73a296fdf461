package service

import (
	"context"

	"agrisense/entities"
)

type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PollView is the poll as one user sees it. Percentages are only filled in
// after the user has voted.
type PollView struct {
	PollID     string           `json:"poll_id"`
	Question   string           `json:"question"`
	Options    []PollOptionView `json:"options"`
	TotalVotes int              `json:"total_votes"`
	Voted      bool             `json:"voted"`
}

type PollOptionView struct {
	Text    string `json:"text"`
	Votes   int    `json:"votes"`
	Percent *int   `json:"percent,omitempty"`
}

type Achievement struct {
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Icon     string `json:"icon"`
	Progress int    `json:"progress"`
	Goal     int    `json:"goal"`
	Current  int    `json:"current"`
}

type CommunityService interface {
	ListPosts(ctx context.Context, limit int) ([]entities.Post, error)
	CreatePost(ctx context.Context, uid string, in CreatePostInput) (*entities.Post, error)
	Like(ctx context.Context, postID string) (*entities.Post, error)
	Reply(ctx context.Context, postID string) (*entities.Post, error)

	Poll(ctx context.Context, uid string) (*PollView, error)
	Vote(ctx context.Context, uid, option string) (*PollView, error)

	Tips(season entities.Season) []entities.FarmingTip
	Achievements(upcomingOnly bool) []Achievement
}
