package service

import (
	"context"

	"fritter/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type freetRepoStub struct {
	createFn           func(context.Context, *models.Freet) error
	getByIDFn          func(context.Context, uint) (*models.Freet, error)
	listAllFn          func(context.Context) ([]models.Freet, error)
	listByAuthorFn     func(context.Context, uint) ([]models.Freet, error)
	listByAuthorsFn    func(context.Context, []uint) ([]models.Freet, error)
	updateContentFn    func(context.Context, uint, string) error
	setAgeRestrictedFn func(context.Context, uint) error
	deleteFn           func(context.Context, uint) error
}

func (s *freetRepoStub) Create(ctx context.Context, freet *models.Freet) error {
	return s.createFn(ctx, freet)
}
func (s *freetRepoStub) GetByID(ctx context.Context, id uint) (*models.Freet, error) {
	return s.getByIDFn(ctx, id)
}
func (s *freetRepoStub) ListAll(ctx context.Context) ([]models.Freet, error) {
	return s.listAllFn(ctx)
}
func (s *freetRepoStub) ListByAuthor(ctx context.Context, authorID uint) ([]models.Freet, error) {
	return s.listByAuthorFn(ctx, authorID)
}
func (s *freetRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Freet, error) {
	return s.listByAuthorsFn(ctx, authorIDs)
}
func (s *freetRepoStub) UpdateContent(ctx context.Context, id uint, content string) error {
	return s.updateContentFn(ctx, id, content)
}
func (s *freetRepoStub) SetAgeRestricted(ctx context.Context, id uint) error {
	return s.setAgeRestrictedFn(ctx, id)
}
func (s *freetRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type reactionRepoStub struct {
	getByUserAndFreetFn func(context.Context, uint, uint) (*models.Reaction, error)
	listByUserFn        func(context.Context, uint) ([]models.Reaction, error)
	addFn               func(context.Context, *models.Reaction) (*models.Freet, error)
	removeFn            func(context.Context, uint, uint) (*models.Freet, error)
}

func (s *reactionRepoStub) GetByUserAndFreet(ctx context.Context, userID, freetID uint) (*models.Reaction, error) {
	return s.getByUserAndFreetFn(ctx, userID, freetID)
}
func (s *reactionRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Reaction, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *reactionRepoStub) Add(ctx context.Context, reaction *models.Reaction) (*models.Freet, error) {
	return s.addFn(ctx, reaction)
}
func (s *reactionRepoStub) Remove(ctx context.Context, userID, freetID uint) (*models.Freet, error) {
	return s.removeFn(ctx, userID, freetID)
}

type followRepoStub struct {
	createFn        func(context.Context, *models.Follow) error
	getFn           func(context.Context, uint, uint) (*models.Follow, error)
	deleteFn        func(context.Context, uint, uint) error
	listFollowingFn func(context.Context, uint) ([]models.Follow, error)
	listFollowersFn func(context.Context, uint) ([]models.Follow, error)
	followingIDsFn  func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Get(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	return s.getFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followingID uint) error {
	return s.deleteFn(ctx, followerID, followingID)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, followerID uint) ([]models.Follow, error) {
	return s.listFollowingFn(ctx, followerID)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, followingID uint) ([]models.Follow, error) {
	return s.listFollowersFn(ctx, followingID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, followerID)
}

type verificationRepoStub struct {
	declareFn func(context.Context, *models.Verification) error
	revokeFn  func(context.Context, uint) error
	historyFn func(context.Context, uint) ([]models.Verification, error)
}

func (s *verificationRepoStub) Declare(ctx context.Context, record *models.Verification) error {
	return s.declareFn(ctx, record)
}
func (s *verificationRepoStub) Revoke(ctx context.Context, userID uint) error {
	return s.revokeFn(ctx, userID)
}
func (s *verificationRepoStub) History(ctx context.Context, userID uint) ([]models.Verification, error) {
	return s.historyFn(ctx, userID)
}
