package repository

import (
	"context"
	"testing"

	"gamerforum/internal/database"
	"gamerforum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// fixture is a fully populated forum: two categories, two games, posts,
// comments, and votes, so cascades have several levels to chew through.
type fixture struct {
	user     models.User
	rpg      models.Category
	action   models.Category
	chrono   models.Game
	hollow   models.Game
	post     models.Post
	comment  models.Comment
	comment2 models.Comment
}

func seedForum(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	var f fixture

	f.user = models.User{Username: "frog", Email: "frog@guardia.example", PasswordHash: "x"}
	require.NoError(t, db.Create(&f.user).Error)

	f.rpg = models.Category{Name: "RPG"}
	f.action = models.Category{Name: "Action"}
	require.NoError(t, db.Create(&f.rpg).Error)
	require.NoError(t, db.Create(&f.action).Error)

	f.chrono = models.Game{Title: "Chrono Trigger", Studio: "Square", Rating: 9.8, CategoryID: f.rpg.ID}
	f.hollow = models.Game{Title: "Hollow Knight", Studio: "Team Cherry", Rating: 9.4, CategoryID: f.action.ID}
	require.NoError(t, db.Create(&f.chrono).Error)
	require.NoError(t, db.Create(&f.hollow).Error)

	f.post = models.Post{Title: "Best ending?", Content: "Which one did you get?", GameID: f.chrono.ID, UserID: f.user.ID}
	require.NoError(t, db.Create(&f.post).Error)

	f.comment = models.Comment{Content: "The one with the dev room.", PostID: f.post.ID, UserID: f.user.ID}
	f.comment2 = models.Comment{Content: "Beating Lavos early.", PostID: f.post.ID, UserID: f.user.ID}
	require.NoError(t, db.Create(&f.comment).Error)
	require.NoError(t, db.Create(&f.comment2).Error)

	votes := []models.Vote{
		{Type: models.VoteUp, UserID: f.user.ID, CommentID: f.comment.ID},
		{Type: models.VoteDown, UserID: f.user.ID, CommentID: f.comment2.ID},
	}
	require.NoError(t, db.Create(&votes).Error)

	return f
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestGameRepository_DeleteCascade(t *testing.T) {
	db := testDB(t)
	f := seedForum(t, db)
	repo := NewGameRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.DeleteCascade(ctx, f.chrono.ID))

	// Nothing under the deleted game survives.
	assert.EqualValues(t, 0, countRows(t, db, &models.Post{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Comment{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Vote{}))

	// Unrelated rows are untouched.
	assert.EqualValues(t, 1, countRows(t, db, &models.Game{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.User{}))
	assert.EqualValues(t, 2, countRows(t, db, &models.Category{}))

	_, err := repo.GetByID(ctx, f.chrono.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestGameRepository_DeleteCascade_MissingGame(t *testing.T) {
	db := testDB(t)
	seedForum(t, db)
	repo := NewGameRepository(db)

	err := repo.DeleteCascade(context.Background(), 9999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	// A failed cascade must not delete anything.
	assert.EqualValues(t, 2, countRows(t, db, &models.Game{}))
	assert.EqualValues(t, 1, countRows(t, db, &models.Post{}))
	assert.EqualValues(t, 2, countRows(t, db, &models.Comment{}))
	assert.EqualValues(t, 2, countRows(t, db, &models.Vote{}))
}

func TestGameRepository_ListProjected_Ordering(t *testing.T) {
	db := testDB(t)
	f := seedForum(t, db)
	repo := NewGameRepository(db)
	ctx := context.Background()

	// Same rating as Hollow Knight; title breaks the tie, descending.
	require.NoError(t, repo.Create(ctx, &models.Game{
		Title: "Axiom Verge", Studio: "Thomas Happ", Rating: 9.4, CategoryID: f.action.ID,
	}))

	games, err := repo.ListProjected(ctx)
	require.NoError(t, err)
	require.Len(t, games, 3)

	assert.Equal(t, "Chrono Trigger", games[0].Title)
	assert.Equal(t, "Hollow Knight", games[1].Title)
	assert.Equal(t, "Axiom Verge", games[2].Title)

	// The category name is flattened into the projection.
	assert.Equal(t, "RPG", games[0].Category)
	assert.Equal(t, "Action", games[1].Category)
}

func TestGameRepository_ListTop_IsPrefixOfFullListing(t *testing.T) {
	db := testDB(t)
	f := seedForum(t, db)
	repo := NewGameRepository(db)
	ctx := context.Background()

	for _, g := range []models.Game{
		{Title: "Celeste", Studio: "EXOK", Rating: 9.1, CategoryID: f.action.ID},
		{Title: "Undertale", Studio: "Toby Fox", Rating: 9.0, CategoryID: f.rpg.ID},
	} {
		g := g
		require.NoError(t, repo.Create(ctx, &g))
	}

	all, err := repo.ListProjected(ctx)
	require.NoError(t, err)
	top, err := repo.ListTop(ctx, 3)
	require.NoError(t, err)

	require.Len(t, top, 3)
	assert.Equal(t, all[:3], top)
}

func TestGameRepository_FindByTitle(t *testing.T) {
	db := testDB(t)
	seedForum(t, db)
	repo := NewGameRepository(db)
	ctx := context.Background()

	game, err := repo.FindByTitle(ctx, "Chrono Trigger")
	require.NoError(t, err)
	assert.Equal(t, "Square", game.Studio)
	assert.Equal(t, "RPG", game.Category)

	_, err = repo.FindByTitle(ctx, "No Such Game")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestGameRepository_ListByCategory(t *testing.T) {
	db := testDB(t)
	f := seedForum(t, db)
	repo := NewGameRepository(db)

	games, err := repo.ListByCategory(context.Background(), f.rpg.ID)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Chrono Trigger", games[0].Title)
}

func TestPostRepository_CommentsCount(t *testing.T) {
	db := testDB(t)
	f := seedForum(t, db)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post, err := repo.GetByID(ctx, f.post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, post.CommentsCount)

	posts, err := repo.ListByGame(ctx, f.chrono.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 2, posts[0].CommentsCount)
}

func TestPostRepository_DeleteCascade(t *testing.T) {
	db := testDB(t)
	f := seedForum(t, db)
	repo := NewPostRepository(db)

	require.NoError(t, repo.DeleteCascade(context.Background(), f.post.ID))

	assert.EqualValues(t, 0, countRows(t, db, &models.Post{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Comment{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Vote{}))
	// Parents stay.
	assert.EqualValues(t, 2, countRows(t, db, &models.Game{}))
}

func TestCommentRepository_ListByPost_Projection(t *testing.T) {
	db := testDB(t)
	f := seedForum(t, db)
	repo := NewCommentRepository(db)

	comments, err := repo.ListByPost(context.Background(), f.post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "frog", comments[0].Username)
	assert.Equal(t, 1, comments[0].LikesCount)
	assert.Equal(t, -1, comments[1].LikesCount)
}

func TestCommentRepository_DeleteWithVotes(t *testing.T) {
	db := testDB(t)
	f := seedForum(t, db)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.DeleteWithVotes(ctx, f.comment.ID))

	assert.EqualValues(t, 1, countRows(t, db, &models.Comment{}))
	// Only the deleted comment's vote goes; the sibling's vote stays.
	assert.EqualValues(t, 1, countRows(t, db, &models.Vote{}))

	err := repo.DeleteWithVotes(ctx, f.comment.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestVoteRepository_Upsert_FlipsExistingVote(t *testing.T) {
	db := testDB(t)
	f := seedForum(t, db)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	// The user already voted up on comment; voting down must not add a row.
	require.NoError(t, repo.Upsert(ctx, &models.Vote{
		Type: models.VoteDown, UserID: f.user.ID, CommentID: f.comment.ID,
	}))

	n, err := repo.CountByComment(ctx, f.comment.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	vote, err := repo.GetByUserAndComment(ctx, f.user.ID, f.comment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VoteDown, vote.Type)
}

func TestVoteRepository_Retract(t *testing.T) {
	db := testDB(t)
	f := seedForum(t, db)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Retract(ctx, f.user.ID, f.comment.ID))

	_, err := repo.GetByUserAndComment(ctx, f.user.ID, f.comment.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	err = repo.Retract(ctx, f.user.ID, f.comment.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestStore_DeleteByID_NotFound(t *testing.T) {
	db := testDB(t)
	store := NewStore[models.Category](db, "category")

	err := store.DeleteByID(context.Background(), 42)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
