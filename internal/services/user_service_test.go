package services_test

import (
	"errors"
	"fmt"
	"testing"

	"rentwheels/internal/models"
	"rentwheels/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_RegisterUser_InsertsNewUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	email := "new@example.com"
	mockRepo.On("GetByEmail", email).Return(nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	inserted, err := service.RegisterUser(&models.User{Email: email, Name: "New User"}, "")

	assert.NoError(t, err)
	assert.True(t, inserted)
	mockRepo.AssertExpectations(t)
}

func TestUserService_RegisterUser_DuplicateIsNoOp(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	email := "existing@example.com"
	mockRepo.On("GetByEmail", email).Return(&models.User{ID: "u-1", Email: email}, nil).Twice()

	// Registering twice never creates a second record.
	for i := 0; i < 2; i++ {
		inserted, err := service.RegisterUser(&models.User{Email: email}, "")
		assert.NoError(t, err)
		assert.False(t, inserted)
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUserService_RegisterUser_HashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	email := "secure@example.com"
	var stored *models.User
	mockRepo.On("GetByEmail", email).Return(nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		stored = args.Get(0).(*models.User)
	}).Return(nil).Once()

	inserted, err := service.RegisterUser(&models.User{Email: email}, "hunter22")

	assert.NoError(t, err)
	assert.True(t, inserted)
	assert.NotEmpty(t, stored.Password)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
	mockRepo.AssertExpectations(t)
}

func TestUserService_RegisterUser_LookupFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	email := "broken@example.com"
	mockRepo.On("GetByEmail", email).Return(nil, errors.New("connection reset")).Once()

	inserted, err := service.RegisterUser(&models.User{Email: email}, "")

	assert.Error(t, err)
	assert.False(t, inserted)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}
