package server

import (
	"net/http"
	"testing"

	"gamerforum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	s, app, f := newTestServer(t)
	auth := bearer(t, s, f.member)

	t.Run("created", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts/1/comments", auth, map[string]string{
			"content": "Beating Lavos early.",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		comment := decodeBody[models.Comment](t, resp)
		assert.Equal(t, f.post.ID, comment.PostID)
		assert.Equal(t, f.member.ID, comment.UserID)
	})

	t.Run("dangling post is 422", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts/99/comments", auth, map[string]string{
			"content": "hello",
		})
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		body := decodeBody[models.ErrorResponse](t, resp)
		assert.Equal(t, models.CodeInvalidReference, body.Code)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts/1/comments", auth, map[string]string{})
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetComments(t *testing.T) {
	_, app, f := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/posts/1/comments", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	comments := decodeBody[[]models.CommentQueryModel](t, resp)
	require.Len(t, comments, 1)
	assert.Equal(t, f.member.Username, comments[0].Username)
	assert.Zero(t, comments[0].LikesCount)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/99/comments", "", nil)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetComment(t *testing.T) {
	_, app, f := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/comments/1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	comment := decodeBody[models.Comment](t, resp)
	assert.Equal(t, f.comment.Content, comment.Content)

	resp = doJSON(t, app, http.MethodGet, "/api/comments/99", "", nil)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateComment_OwnershipEnforced(t *testing.T) {
	s, app, f := newTestServer(t)

	resp := doJSON(t, app, http.MethodPut, "/api/comments/1", bearer(t, s, f.admin), map[string]string{
		"content": "hijacked",
	})
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/comments/1", bearer(t, s, f.member), map[string]string{
		"content": "edited",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	comment := decodeBody[models.Comment](t, resp)
	assert.Equal(t, "edited", comment.Content)
}

func TestDeleteComment_RemovesVotes(t *testing.T) {
	s, app, f := newTestServer(t)

	require.NoError(t, s.db.Create(&models.Vote{
		Type: models.VoteUp, UserID: f.admin.ID, CommentID: f.comment.ID,
	}).Error)

	// Admin may delete someone else's comment.
	resp := doJSON(t, app, http.MethodDelete, "/api/comments/1", bearer(t, s, f.admin), nil)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var votes int64
	require.NoError(t, s.db.Model(&models.Vote{}).Count(&votes).Error)
	assert.Zero(t, votes)
}

func TestGetUserComments(t *testing.T) {
	s, app, f := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/users/2/comments", bearer(t, s, f.member), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	comments := decodeBody[[]models.CommentQueryModel](t, resp)
	require.Len(t, comments, 1)
	assert.Equal(t, f.comment.Content, comments[0].Content)
}
