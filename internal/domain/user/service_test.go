package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, username, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, NewCredentialsValidator(), slog.Default())
}

func TestRegister(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(User{}, ErrNotFound)
	mockRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string")).Return(nil)

	err := service.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)

	// Пароль хранится только в виде bcrypt-хэша
	storedHash := mockRepo.Calls[1].Arguments.String(2)
	assert.NotEqual(t, "password123", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("password123")))

	mockRepo.AssertExpectations(t)
}

func TestRegister_UserExists(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(User{Username: "alice"}, nil)

	err := service.Register(context.Background(), "alice", "password123")
	assert.ErrorIs(t, err, ErrExists)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_InvalidInput(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	err := service.Register(context.Background(), "ab", "password123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = service.Register(context.Background(), "alice", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)

	mockRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestAuthenticate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	stored := User{Username: "alice", PasswordHash: hashFor(t, "password123")}
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)

	u, err := service.Authenticate(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	stored := User{Username: "alice", PasswordHash: hashFor(t, "password123")}
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)

	_, err := service.Authenticate(context.Background(), "alice", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestAuthenticate_UserNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByUsername", mock.Anything, "ghost").Return(User{}, ErrNotFound)

	_, err := service.Authenticate(context.Background(), "ghost", "password123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangePassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	stored := User{Username: "alice", PasswordHash: hashFor(t, "oldpassword")}
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)
	mockRepo.On("UpdatePassword", mock.Anything, "alice", mock.AnythingOfType("string")).Return(nil)

	err := service.ChangePassword(context.Background(), "alice", "oldpassword", "newpassword")
	require.NoError(t, err)

	newHash := mockRepo.Calls[1].Arguments.String(2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newpassword")))
	mockRepo.AssertExpectations(t)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	stored := User{Username: "alice", PasswordHash: hashFor(t, "oldpassword")}
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)

	err := service.ChangePassword(context.Background(), "alice", "wrongold", "newpassword")
	assert.ErrorIs(t, err, ErrInvalidAuth)
	mockRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_WeakNewPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	stored := User{Username: "alice", PasswordHash: hashFor(t, "oldpassword")}
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)

	err := service.ChangePassword(context.Background(), "alice", "oldpassword", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Delete", mock.Anything, "alice").Return(nil)
	assert.NoError(t, service.Delete(context.Background(), "alice"))

	mockRepo.ExpectedCalls = nil
	mockRepo.On("Delete", mock.Anything, "alice").Return(errors.New("db error"))
	assert.Error(t, service.Delete(context.Background(), "alice"))
}
