package serviceImp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrisense/database"
	"agrisense/entities"
	"agrisense/pkg/apperr"
	"agrisense/pkg/community/repositoryImp"
	"agrisense/pkg/community/service"
	"agrisense/pkg/logger"
)

type namer map[string]string

func (n namer) DisplayName(_ context.Context, uid string) string {
	if name, ok := n[uid]; ok {
		return name
	}
	return "You"
}

func newSvc(t *testing.T) service.CommunityService {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	polls := repositoryImp.NewPollRepository(db)
	require.NoError(t, SeedDefaults(context.Background(), polls))
	return NewCommunityService(repositoryImp.NewPostRepository(db), polls, namer{"U_1": "Vikram P."}, logger.Discard())
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(t)

	p, err := svc.CreatePost(ctx, "U_1", service.CreatePostInput{Title: " Aphids ", Content: "Neem oil works"})
	require.NoError(t, err)
	assert.Equal(t, "Aphids", p.Title)
	assert.Equal(t, "Vikram P.", p.Author)
	assert.NotEmpty(t, p.PostID)

	p, err = svc.CreatePost(ctx, "U_2", service.CreatePostInput{Title: "Drip lines", Content: "Which brand?"})
	require.NoError(t, err)
	assert.Equal(t, "You", p.Author)

	_, err = svc.CreatePost(ctx, "U_1", service.CreatePostInput{Title: "only a title"})
	assert.True(t, apperr.Is(err, apperr.InvalidArgument))

	_, err = svc.CreatePost(ctx, "U_1", service.CreatePostInput{Title: strings.Repeat("x", 201), Content: "c"})
	assert.True(t, apperr.Is(err, apperr.InvalidArgument))

	_, err = svc.CreatePost(ctx, "", service.CreatePostInput{Title: "t", Content: "c"})
	assert.True(t, apperr.Is(err, apperr.Unauthenticated))

	list, err := svc.ListPosts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLikeAndReply(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(t)
	p, err := svc.CreatePost(ctx, "U_1", service.CreatePostInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	_, err = svc.Like(ctx, p.PostID)
	require.NoError(t, err)
	liked, err := svc.Like(ctx, p.PostID)
	require.NoError(t, err)
	assert.Equal(t, 2, liked.LikeCount)

	replied, err := svc.Reply(ctx, p.PostID)
	require.NoError(t, err)
	assert.Equal(t, 1, replied.ReplyCount)

	_, err = svc.Like(ctx, "nope")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestPollVoting(t *testing.T) {
	ctx := context.Background()
	svc := newSvc(t)

	before, err := svc.Poll(ctx, "U_1")
	require.NoError(t, err)
	assert.Equal(t, "What's your biggest challenge this season?", before.Question)
	assert.Equal(t, 86, before.TotalVotes)
	assert.False(t, before.Voted)
	for _, o := range before.Options {
		assert.Nil(t, o.Percent)
	}

	after, err := svc.Vote(ctx, "U_1", "water management")
	require.NoError(t, err)
	assert.True(t, after.Voted)
	assert.Equal(t, 87, after.TotalVotes)
	require.Len(t, after.Options, 4)
	assert.Equal(t, "Pest control", after.Options[0].Text)
	assert.Equal(t, 26, after.Options[1].Votes)
	require.NotNil(t, after.Options[0].Percent)
	assert.Equal(t, 44, *after.Options[0].Percent)

	_, err = svc.Vote(ctx, "U_1", "Other")
	assert.True(t, apperr.Is(err, apperr.AlreadyExists))

	_, err = svc.Vote(ctx, "U_2", "Weather")
	assert.True(t, apperr.Is(err, apperr.InvalidArgument))

	_, err = svc.Vote(ctx, "", "Other")
	assert.True(t, apperr.Is(err, apperr.Unauthenticated))
}

func TestTips(t *testing.T) {
	svc := newSvc(t)
	winter := svc.Tips(entities.SeasonWinter)
	require.Len(t, winter, 3)
	assert.Equal(t, "Crop Protection", winter[0].Category)

	winter[0].Tip = "mutated"
	assert.NotEqual(t, "mutated", svc.Tips(entities.SeasonWinter)[0].Tip)

	assert.Empty(t, svc.Tips(entities.Season("spring")))
}

func TestAchievements(t *testing.T) {
	svc := newSvc(t)
	assert.Len(t, svc.Achievements(false), 6)

	upcoming := svc.Achievements(true)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Community Helper", upcoming[0].Name)
	assert.Equal(t, "Harvest Master", upcoming[1].Name)
}
