package service_test

import (
	"errors"
	"testing"

	"todo-list-backend/internal/database/models"
	"todo-list-backend/internal/mocks"
	"todo-list-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUser(t *testing.T, email, org, password string) *models.User {
	u := &models.User{Email: email, IsActive: true, Organization: models.Organization{Name: org}}
	require.NoError(t, u.SetPassword(password, bcrypt.MinCost))
	return u
}

func TestAuthenticate(t *testing.T) {
	t.Run("matching credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryInterface(ctrl)
		user := newUser(t, "simple@email.com", "Test Company", "foo")
		repo.EXPECT().GetByEmailAndOrganization("simple@email.com", "Test Company").Return(user, nil).Times(1)

		got, err := service.NewAuthenticator(repo).Authenticate(service.Credentials{
			Email: "simple@email.com", Organization: "Test Company", Password: "foo",
		})

		assert.NoError(t, err)
		assert.Same(t, user, got)
	})

	t.Run("email domain is normalized before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryInterface(ctrl)
		user := newUser(t, "simple@email.com", "Test Company", "foo")
		repo.EXPECT().GetByEmailAndOrganization("simple@email.com", "Test Company").Return(user, nil).Times(1)

		got, err := service.NewAuthenticator(repo).Authenticate(service.Credentials{
			Email: " simple@EMAIL.com", Organization: "Test Company", Password: "foo",
		})

		assert.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryInterface(ctrl)
		user := newUser(t, "simple@email.com", "Test Company", "foo")
		repo.EXPECT().GetByEmailAndOrganization(gomock.Any(), gomock.Any()).Return(user, nil).Times(1)

		got, err := service.NewAuthenticator(repo).Authenticate(service.Credentials{
			Email: "simple@email.com", Organization: "Test Company", Password: "bar",
		})

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("no user in that organization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryInterface(ctrl)
		repo.EXPECT().GetByEmailAndOrganization("simple@email.com", "Other Company").Return(nil, gorm.ErrRecordNotFound).Times(1)

		got, err := service.NewAuthenticator(repo).Authenticate(service.Credentials{
			Email: "simple@email.com", Organization: "Other Company", Password: "foo",
		})

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("inactive user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryInterface(ctrl)
		user := newUser(t, "simple@email.com", "Test Company", "foo")
		user.IsActive = false
		repo.EXPECT().GetByEmailAndOrganization(gomock.Any(), gomock.Any()).Return(user, nil).Times(1)

		got, err := service.NewAuthenticator(repo).Authenticate(service.Credentials{
			Email: "simple@email.com", Organization: "Test Company", Password: "foo",
		})

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("missing fields skip the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryInterface(ctrl)

		got, err := service.NewAuthenticator(repo).Authenticate(service.Credentials{Email: "simple@email.com"})

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepositoryInterface(ctrl)
		repo.EXPECT().GetByEmailAndOrganization(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset")).Times(1)

		got, err := service.NewAuthenticator(repo).Authenticate(service.Credentials{
			Email: "simple@email.com", Organization: "Test Company", Password: "foo",
		})

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
