package serviceImp

import (
	"context"
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"agrisense/entities"
	"agrisense/pkg/apperr"
	"agrisense/pkg/community/repository"
	"agrisense/pkg/community/service"
	"agrisense/pkg/logger"
)

const (
	DefaultPostLimit = 20
	MaxPostLimit     = 100
	maxTitleRunes    = 200
	maxContentRunes  = 5000
)

// AuthorNamer resolves the name shown on a new post.
type AuthorNamer interface {
	DisplayName(ctx context.Context, uid string) string
}

type communitySvc struct {
	posts  repository.PostRepository
	polls  repository.PollRepository
	author AuthorNamer
	log    logger.Logger
}

func NewCommunityService(posts repository.PostRepository, polls repository.PollRepository, author AuthorNamer, log logger.Logger) service.CommunityService {
	return &communitySvc{posts: posts, polls: polls, author: author, log: logger.Component(log, "community_service")}
}

// SeedDefaults stores the launch poll if the store has none yet.
func SeedDefaults(ctx context.Context, polls repository.PollRepository) error {
	return polls.Seed(ctx, defaultPoll())
}

func (s *communitySvc) internal(op string, err error) error {
	s.log.Errorf("%s: %v", op, err)
	return apperr.Wrap(apperr.Internal, "", err)
}

func (s *communitySvc) ListPosts(ctx context.Context, limit int) ([]entities.Post, error) {
	if limit <= 0 {
		limit = DefaultPostLimit
	}
	if limit > MaxPostLimit {
		limit = MaxPostLimit
	}
	out, err := s.posts.ListRecent(ctx, limit)
	if err != nil {
		return nil, s.internal("list posts", err)
	}
	if out == nil {
		out = []entities.Post{}
	}
	return out, nil
}

func (s *communitySvc) CreatePost(ctx context.Context, uid string, in service.CreatePostInput) (*entities.Post, error) {
	if uid == "" {
		return nil, apperr.New(apperr.Unauthenticated, "authentication required")
	}
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, apperr.New(apperr.InvalidArgument, "title and content are required")
	}
	if utf8.RuneCountInString(title) > maxTitleRunes || utf8.RuneCountInString(content) > maxContentRunes {
		return nil, apperr.New(apperr.InvalidArgument, "post is too long")
	}

	p := &entities.Post{
		PostID:   uuid.NewString(),
		Title:    title,
		Content:  content,
		Author:   s.author.DisplayName(ctx, uid),
		AuthorID: uid,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, s.internal("create post", err)
	}
	return p, nil
}

func (s *communitySvc) Like(ctx context.Context, postID string) (*entities.Post, error) {
	return s.bump(ctx, postID, repository.Likes)
}

func (s *communitySvc) Reply(ctx context.Context, postID string) (*entities.Post, error) {
	return s.bump(ctx, postID, repository.Replies)
}

func (s *communitySvc) bump(ctx context.Context, postID string, c repository.Counter) (*entities.Post, error) {
	p, err := s.posts.Increment(ctx, postID, c)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	if err != nil {
		return nil, s.internal("increment "+string(c), err)
	}
	return p, nil
}

func (s *communitySvc) Poll(ctx context.Context, uid string) (*service.PollView, error) {
	p, err := s.polls.Current(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "no active poll")
	}
	if err != nil {
		return nil, s.internal("load poll", err)
	}
	voted := false
	if uid != "" {
		if voted, err = s.polls.HasVoted(ctx, p.PollID, uid); err != nil {
			return nil, s.internal("check vote", err)
		}
	}
	return pollView(p, voted), nil
}

func (s *communitySvc) Vote(ctx context.Context, uid, option string) (*service.PollView, error) {
	if uid == "" {
		return nil, apperr.New(apperr.Unauthenticated, "authentication required")
	}
	p, err := s.polls.Current(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "no active poll")
	}
	if err != nil {
		return nil, s.internal("load poll", err)
	}

	var optionID uint
	for _, o := range p.Options {
		if strings.EqualFold(o.Text, strings.TrimSpace(option)) {
			optionID = o.OptionID
		}
	}
	if optionID == 0 {
		return nil, apperr.New(apperr.InvalidArgument, "Please select an option to vote.")
	}

	switch err := s.polls.Vote(ctx, p.PollID, uid, optionID); {
	case errors.Is(err, repository.ErrAlreadyVoted):
		return nil, apperr.New(apperr.AlreadyExists, "you have already voted")
	case errors.Is(err, repository.ErrNotFound):
		return nil, apperr.New(apperr.InvalidArgument, "Please select an option to vote.")
	case err != nil:
		return nil, s.internal("vote", err)
	}
	return s.Poll(ctx, uid)
}

func pollView(p *entities.Poll, voted bool) *service.PollView {
	v := &service.PollView{PollID: p.PollID, Question: p.Question, Voted: voted}
	for _, o := range p.Options {
		v.TotalVotes += o.Votes
	}
	for _, o := range p.Options {
		ov := service.PollOptionView{Text: o.Text, Votes: o.Votes}
		if voted {
			pct := 0
			if v.TotalVotes > 0 {
				pct = int(math.Round(float64(o.Votes) / float64(v.TotalVotes) * 100))
			}
			ov.Percent = &pct
		}
		v.Options = append(v.Options, ov)
	}
	return v
}

// Tips returns an empty list for an unknown season.
func (s *communitySvc) Tips(season entities.Season) []entities.FarmingTip {
	src := seasonalTips[season]
	out := make([]entities.FarmingTip, len(src))
	copy(out, src)
	return out
}

func (s *communitySvc) Achievements(upcomingOnly bool) []service.Achievement {
	if !upcomingOnly {
		out := make([]service.Achievement, len(achievements))
		copy(out, achievements)
		return out
	}
	out := []service.Achievement{}
	for _, a := range achievements {
		if a.Progress < 100 {
			out = append(out, a)
		}
		if len(out) == upcomingAchievements {
			break
		}
	}
	return out
}
