package service

import (
	"context"
	"testing"

	"gamerforum/internal/models"

	"github.com/stretchr/testify/require"
)

// Stub repositories with overridable behavior per test.

type gameRepoStub struct {
	createFn         func(context.Context, *models.Game) error
	getByIDFn        func(context.Context, uint) (*models.Game, error)
	updateFn         func(context.Context, *models.Game) error
	listProjectedFn  func(context.Context) ([]models.GameQueryModel, error)
	listTopFn        func(context.Context, int) ([]models.GameQueryModel, error)
	listByCategoryFn func(context.Context, uint) ([]models.GameQueryModel, error)
	findByTitleFn    func(context.Context, string) (*models.GameQueryModel, error)
	deleteCascadeFn  func(context.Context, uint) error
	countFn          func(context.Context) (int64, error)
	existsFn         func(context.Context, uint) (bool, error)
}

func (s *gameRepoStub) Create(ctx context.Context, g *models.Game) error { return s.createFn(ctx, g) }
func (s *gameRepoStub) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	return s.getByIDFn(ctx, id)
}
func (s *gameRepoStub) Update(ctx context.Context, g *models.Game) error { return s.updateFn(ctx, g) }
func (s *gameRepoStub) ListProjected(ctx context.Context) ([]models.GameQueryModel, error) {
	return s.listProjectedFn(ctx)
}
func (s *gameRepoStub) ListTop(ctx context.Context, n int) ([]models.GameQueryModel, error) {
	return s.listTopFn(ctx, n)
}
func (s *gameRepoStub) ListByCategory(ctx context.Context, id uint) ([]models.GameQueryModel, error) {
	return s.listByCategoryFn(ctx, id)
}
func (s *gameRepoStub) FindByTitle(ctx context.Context, title string) (*models.GameQueryModel, error) {
	return s.findByTitleFn(ctx, title)
}
func (s *gameRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}
func (s *gameRepoStub) Count(ctx context.Context) (int64, error)        { return s.countFn(ctx) }
func (s *gameRepoStub) Exists(ctx context.Context, id uint) (bool, error) { return s.existsFn(ctx, id) }

func noopGameRepo() *gameRepoStub {
	return &gameRepoStub{
		createFn:  func(_ context.Context, _ *models.Game) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Game, error) { return &models.Game{ID: id}, nil },
		updateFn:  func(_ context.Context, _ *models.Game) error { return nil },
		listProjectedFn: func(_ context.Context) ([]models.GameQueryModel, error) {
			return nil, nil
		},
		listTopFn: func(_ context.Context, _ int) ([]models.GameQueryModel, error) { return nil, nil },
		listByCategoryFn: func(_ context.Context, _ uint) ([]models.GameQueryModel, error) {
			return nil, nil
		},
		findByTitleFn: func(_ context.Context, t string) (*models.GameQueryModel, error) {
			return &models.GameQueryModel{Title: t}, nil
		},
		deleteCascadeFn: func(_ context.Context, _ uint) error { return nil },
		countFn:         func(_ context.Context) (int64, error) { return 0, nil },
		existsFn:        func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

type categoryRepoStub struct {
	createFn  func(context.Context, *models.Category) error
	getByIDFn func(context.Context, uint) (*models.Category, error)
	listFn    func(context.Context) ([]models.Category, error)
	existsFn  func(context.Context, uint) (bool, error)
}

func (s *categoryRepoStub) Create(ctx context.Context, c *models.Category) error {
	return s.createFn(ctx, c)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		createFn: func(_ context.Context, _ *models.Category) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Category, error) {
			return &models.Category{ID: id}, nil
		},
		listFn:   func(_ context.Context) ([]models.Category, error) { return nil, nil },
		existsFn: func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	updateFn        func(context.Context, *models.Post) error
	listByGameFn    func(context.Context, uint) ([]models.Post, error)
	deleteCascadeFn func(context.Context, uint) error
	existsFn        func(context.Context, uint) (bool, error)
}

func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error { return s.createFn(ctx, p) }
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, p *models.Post) error { return s.updateFn(ctx, p) }
func (s *postRepoStub) ListByGame(ctx context.Context, id uint) ([]models.Post, error) {
	return s.listByGameFn(ctx, id)
}
func (s *postRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}
func (s *postRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:        func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		updateFn:        func(_ context.Context, _ *models.Post) error { return nil },
		listByGameFn:    func(_ context.Context, _ uint) ([]models.Post, error) { return nil, nil },
		deleteCascadeFn: func(_ context.Context, _ uint) error { return nil },
		existsFn:        func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

type commentRepoStub struct {
	createFn          func(context.Context, *models.Comment) error
	getByIDFn         func(context.Context, uint) (*models.Comment, error)
	updateFn          func(context.Context, *models.Comment) error
	listByPostFn      func(context.Context, uint) ([]models.CommentQueryModel, error)
	listByUserFn      func(context.Context, uint) ([]models.CommentQueryModel, error)
	deleteWithVotesFn func(context.Context, uint) error
	existsFn          func(context.Context, uint) (bool, error)
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	return s.updateFn(ctx, c)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, id uint) ([]models.CommentQueryModel, error) {
	return s.listByPostFn(ctx, id)
}
func (s *commentRepoStub) ListByUser(ctx context.Context, id uint) ([]models.CommentQueryModel, error) {
	return s.listByUserFn(ctx, id)
}
func (s *commentRepoStub) DeleteWithVotes(ctx context.Context, id uint) error {
	return s.deleteWithVotesFn(ctx, id)
}
func (s *commentRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		updateFn: func(_ context.Context, _ *models.Comment) error { return nil },
		listByPostFn: func(_ context.Context, _ uint) ([]models.CommentQueryModel, error) {
			return nil, nil
		},
		listByUserFn: func(_ context.Context, _ uint) ([]models.CommentQueryModel, error) {
			return nil, nil
		},
		deleteWithVotesFn: func(_ context.Context, _ uint) error { return nil },
		existsFn:          func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

type voteRepoStub struct {
	upsertFn              func(context.Context, *models.Vote) error
	getByUserAndCommentFn func(context.Context, uint, uint) (*models.Vote, error)
	retractFn             func(context.Context, uint, uint) error
	countByCommentFn      func(context.Context, uint) (int64, error)
}

func (s *voteRepoStub) Upsert(ctx context.Context, v *models.Vote) error { return s.upsertFn(ctx, v) }
func (s *voteRepoStub) GetByUserAndComment(ctx context.Context, userID, commentID uint) (*models.Vote, error) {
	return s.getByUserAndCommentFn(ctx, userID, commentID)
}
func (s *voteRepoStub) Retract(ctx context.Context, userID, commentID uint) error {
	return s.retractFn(ctx, userID, commentID)
}
func (s *voteRepoStub) CountByComment(ctx context.Context, commentID uint) (int64, error) {
	return s.countByCommentFn(ctx, commentID)
}

func noopVoteRepo() *voteRepoStub {
	return &voteRepoStub{
		upsertFn: func(_ context.Context, _ *models.Vote) error { return nil },
		getByUserAndCommentFn: func(_ context.Context, _, _ uint) (*models.Vote, error) {
			return &models.Vote{}, nil
		},
		retractFn:        func(_ context.Context, _, _ uint) error { return nil },
		countByCommentFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	existsFn        func(context.Context, uint) (bool, error)
}

func (s *userRepoStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userRepoStub) Update(ctx context.Context, u *models.User) error { return s.updateFn(ctx, u) }
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByUsernameFn: func(_ context.Context, u string) (*models.User, error) { return &models.User{Username: u}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		existsFn:        func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertInvalidReferenceError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeInvalidReference)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeUnauthorized)
}
