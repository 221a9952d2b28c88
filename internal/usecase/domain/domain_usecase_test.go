package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"users-management/internal/entities"
	"users-management/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) InsertUser(ctx context.Context, draft entities.UserDraft) (*entities.User, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) UpdateUser(ctx context.Context, id int64, draft entities.UserDraft) (*entities.User, error) {
	args := m.Called(ctx, id, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func hasDeadline(ctx context.Context) bool {
	_, ok := ctx.Deadline()
	return ok
}

func TestUsecase_ListUsersAppliesTimeout(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), repo, time.Second)

	expected := []entities.User{{ID: 1, Name: "Alice", Age: "30"}}
	repo.On("ListUsers", mock.MatchedBy(hasDeadline)).Return(expected, nil)

	users, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, expected, users)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateUserDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), repo, time.Second)

	draft := entities.UserDraft{Name: "Alice", Age: "30"}
	expected := &entities.User{ID: 1, Name: "Alice", Age: "30"}
	repo.On("InsertUser", mock.Anything, draft).Return(expected, nil)

	user, err := uc.CreateUser(context.Background(), draft)
	require.NoError(t, err)
	require.Equal(t, expected, user)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateUserPropagatesError(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), repo, time.Second)

	boom := errors.New("boom")
	repo.On("InsertUser", mock.Anything, mock.Anything).Return(nil, boom)

	_, err := uc.CreateUser(context.Background(), entities.UserDraft{Name: "Alice"})
	require.ErrorIs(t, err, boom)
}

func TestUsecase_UpdateUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), repo, time.Second)

	_, err := uc.UpdateUser(context.Background(), 0, entities.UserDraft{Name: "Bob"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateUserDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), repo, time.Second)

	draft := entities.UserDraft{Name: "Bob2", Age: "25"}
	expected := &entities.User{ID: 7, Name: "Bob2", Age: "25"}
	repo.On("UpdateUser", mock.Anything, int64(7), draft).Return(expected, nil)

	user, err := uc.UpdateUser(context.Background(), 7, draft)
	require.NoError(t, err)
	require.Equal(t, expected, user)
	repo.AssertExpectations(t)
}

func TestUsecase_DeleteUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), repo, time.Second)

	err := uc.DeleteUser(context.Background(), -1)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestUsecase_DeleteUserDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), repo, 0)

	repo.On("DeleteUser", mock.Anything, int64(7)).Return(nil)

	require.NoError(t, uc.DeleteUser(context.Background(), 7))
	repo.AssertExpectations(t)
}

func TestUsecase_LogsAcknowledgedWritesAndRejectedIDs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := &repoMock{}
	uc := New(zap.New(core).Sugar(), repo, time.Second)

	draft := entities.UserDraft{Name: "Alice", Age: "30"}
	repo.On("InsertUser", mock.Anything, draft).Return(&entities.User{ID: 5, Name: "Alice", Age: "30"}, nil).Once()
	repo.On("DeleteUser", mock.Anything, int64(5)).Return(errors.New("boom")).Once()

	_, err := uc.CreateUser(context.Background(), draft)
	require.NoError(t, err)
	require.Error(t, uc.DeleteUser(context.Background(), 5))
	require.ErrorIs(t, uc.DeleteUser(context.Background(), 0), entities.ErrInvalidArgument)

	created := logs.FilterMessage("user created").All()
	require.Len(t, created, 1)
	require.Equal(t, "usecase", created[0].LoggerName)
	require.EqualValues(t, 5, created[0].ContextMap()["user_id"])
	require.Zero(t, logs.FilterMessage("user deleted").Len())
	require.Equal(t, 1, logs.FilterMessage("failed to delete user: invalid id").Len())
}
