package server

import (
	"context"

	"fritter/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

// MockFreetRepository is a mock of the FreetRepository interface
type MockFreetRepository struct {
	mock.Mock
}

func (m *MockFreetRepository) Create(ctx context.Context, freet *models.Freet) error {
	args := m.Called(ctx, freet)
	return args.Error(0)
}

func (m *MockFreetRepository) GetByID(ctx context.Context, id uint) (*models.Freet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Freet), args.Error(1)
}

func (m *MockFreetRepository) ListAll(ctx context.Context) ([]models.Freet, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Freet), args.Error(1)
}

func (m *MockFreetRepository) ListByAuthor(ctx context.Context, authorID uint) ([]models.Freet, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]models.Freet), args.Error(1)
}

func (m *MockFreetRepository) ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Freet, error) {
	args := m.Called(ctx, authorIDs)
	return args.Get(0).([]models.Freet), args.Error(1)
}

func (m *MockFreetRepository) UpdateContent(ctx context.Context, id uint, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *MockFreetRepository) SetAgeRestricted(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFreetRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReactionRepository is a mock of the ReactionRepository interface
type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) GetByUserAndFreet(ctx context.Context, userID, freetID uint) (*models.Reaction, error) {
	args := m.Called(ctx, userID, freetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reaction), args.Error(1)
}

func (m *MockReactionRepository) ListByUser(ctx context.Context, userID uint) ([]models.Reaction, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Reaction), args.Error(1)
}

func (m *MockReactionRepository) Add(ctx context.Context, reaction *models.Reaction) (*models.Freet, error) {
	args := m.Called(ctx, reaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Freet), args.Error(1)
}

func (m *MockReactionRepository) Remove(ctx context.Context, userID, freetID uint) (*models.Freet, error) {
	args := m.Called(ctx, userID, freetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Freet), args.Error(1)
}

// MockFollowRepository is a mock of the FollowRepository interface
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	args := m.Called(ctx, follow)
	return args.Error(0)
}

func (m *MockFollowRepository) Get(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	args := m.Called(ctx, followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Follow), args.Error(1)
}

func (m *MockFollowRepository) Delete(ctx context.Context, followerID, followingID uint) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) ListFollowing(ctx context.Context, followerID uint) ([]models.Follow, error) {
	args := m.Called(ctx, followerID)
	return args.Get(0).([]models.Follow), args.Error(1)
}

func (m *MockFollowRepository) ListFollowers(ctx context.Context, followingID uint) ([]models.Follow, error) {
	args := m.Called(ctx, followingID)
	return args.Get(0).([]models.Follow), args.Error(1)
}

func (m *MockFollowRepository) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	args := m.Called(ctx, followerID)
	return args.Get(0).([]uint), args.Error(1)
}

// MockVerificationRepository is a mock of the VerificationRepository interface
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Declare(ctx context.Context, record *models.Verification) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVerificationRepository) Revoke(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockVerificationRepository) History(ctx context.Context, userID uint) ([]models.Verification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Verification), args.Error(1)
}
