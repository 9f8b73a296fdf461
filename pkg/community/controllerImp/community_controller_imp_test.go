package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrisense/database"
	"agrisense/entities"
	"agrisense/pkg/community/repositoryImp"
	"agrisense/pkg/community/service"
	"agrisense/pkg/community/serviceImp"
	"agrisense/pkg/logger"
	"agrisense/pkg/middleware"
)

type anonymousNamer struct{}

func (anonymousNamer) DisplayName(context.Context, string) string { return "You" }

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	polls := repositoryImp.NewPollRepository(db)
	require.NoError(t, serviceImp.SeedDefaults(context.Background(), polls))
	ctrl := New(serviceImp.NewCommunityService(repositoryImp.NewPostRepository(db), polls, anonymousNamer{}, logger.Discard()))

	e := echo.New()
	e.Use(middleware.Identity(false))
	g := e.Group("/api/community")
	g.GET("/posts", ctrl.ListPosts)
	g.POST("/posts", ctrl.CreatePost)
	g.POST("/posts/:id/like", ctrl.Like)
	g.POST("/posts/:id/replies", ctrl.Reply)
	g.GET("/poll", ctrl.Poll)
	g.POST("/poll/vote", ctrl.Vote)
	g.GET("/tips", ctrl.Tips)
	g.GET("/achievements", ctrl.Achievements)
	return e
}

func call(e *echo.Echo, method, path, uid, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if uid != "" {
		req.Header.Set(middleware.UserIDHeader, uid)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPostLifecycle(t *testing.T) {
	e := newServer(t)

	rec := call(e, http.MethodPost, "/api/community/posts", "U_1", `{"title":"Best organic fertilizer?","content":"For tomatoes"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var p entities.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "You", p.Author)

	rec = call(e, http.MethodPost, "/api/community/posts/"+p.PostID+"/like", "U_2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = call(e, http.MethodPost, "/api/community/posts/"+p.PostID+"/replies", "U_2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(e, http.MethodGet, "/api/community/posts?limit=5", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []entities.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].LikeCount)
	assert.Equal(t, 1, list[0].ReplyCount)

	rec = call(e, http.MethodPost, "/api/community/posts/missing/like", "U_2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = call(e, http.MethodPost, "/api/community/posts", "U_1", `{"title":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVoteTwiceConflicts(t *testing.T) {
	e := newServer(t)

	rec := call(e, http.MethodPost, "/api/community/poll/vote", "U_1", `{"option":"Soil fertility"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var v service.PollView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.True(t, v.Voted)

	rec = call(e, http.MethodPost, "/api/community/poll/vote", "U_1", `{"option":"Other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(e, http.MethodGet, "/api/community/poll", "U_3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.False(t, v.Voted)
	assert.Equal(t, 87, v.TotalVotes)

	rec = call(e, http.MethodPost, "/api/community/poll/vote", "", `{"option":"Other"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTipsBySeason(t *testing.T) {
	e := newServer(t)

	rec := call(e, http.MethodGet, "/api/community/tips?season=monsoon", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Season string                `json:"season"`
		Tips   []entities.FarmingTip `json:"tips"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "monsoon", body.Season)
	require.Len(t, body.Tips, 3)
	assert.Equal(t, "Ensure proper drainage to prevent waterlogging.", body.Tips[0].Tip)

	rec = call(e, http.MethodGet, "/api/community/tips", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "summer", body.Season)

	rec = call(e, http.MethodGet, "/api/community/tips?season=autumn", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(e, http.MethodGet, "/api/community/achievements?upcoming=true", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ach []service.Achievement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ach))
	assert.Len(t, ach, 2)
}
