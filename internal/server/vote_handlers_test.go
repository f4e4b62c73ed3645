package server

import (
	"net/http"
	"testing"

	"gamerforum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastVote(t *testing.T) {
	s, app, f := newTestServer(t)
	auth := bearer(t, s, f.admin)

	t.Run("invalid type rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/comments/1/votes", auth, map[string]string{"type": "sideways"})
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("dangling comment is 422", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/comments/99/votes", auth, map[string]string{"type": "up"})
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("repeat vote flips, never duplicates", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/comments/1/votes", auth, map[string]string{"type": "up"})
		_ = resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, app, http.MethodPost, "/api/comments/1/votes", auth, map[string]string{"type": "down"})
		_ = resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		var votes []models.Vote
		require.NoError(t, s.db.Find(&votes).Error)
		require.Len(t, votes, 1)
		assert.Equal(t, models.VoteDown, votes[0].Type)
	})
}

func TestRetractVote(t *testing.T) {
	s, app, f := newTestServer(t)
	auth := bearer(t, s, f.admin)

	t.Run("no vote to retract", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/api/comments/1/votes", auth, nil)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("retract removes the row", func(t *testing.T) {
		require.NoError(t, s.db.Create(&models.Vote{
			Type: models.VoteUp, UserID: f.admin.ID, CommentID: f.comment.ID,
		}).Error)

		resp := doJSON(t, app, http.MethodDelete, "/api/comments/1/votes", auth, nil)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		var n int64
		require.NoError(t, s.db.Model(&models.Vote{}).Count(&n).Error)
		assert.Zero(t, n)
	})
}
