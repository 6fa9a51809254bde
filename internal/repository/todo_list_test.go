//go:build integration
// +build integration

package repository

import (
	"testing"

	"todo-list-backend/internal/database/models"
	"todo-list-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ToDoListRepositoryTestSuite tests the ToDoListRepository
type ToDoListRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ToDoListRepository
	factories     *testutils.FactorySet
	mine          *models.Organization
	theirs        *models.Organization
}

func (suite *ToDoListRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewToDoListRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ToDoListRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ToDoListRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	orgRepo := NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.mine = suite.factories.Organization.WithName("Test Company")
	suite.theirs = suite.factories.Organization.WithName("Other Company")
	suite.Require().NoError(orgRepo.Create(suite.mine))
	suite.Require().NoError(orgRepo.Create(suite.theirs))
}

func (suite *ToDoListRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ToDoListRepositoryTestSuite) TestCreateLoadsOrganization() {
	item := suite.factories.ToDoList.WithText(suite.mine, "test")
	item.Organization = models.Organization{}

	err := suite.repo.Create(item)

	suite.NoError(err)
	suite.Equal("Test Company", item.Organization.Name)
	suite.False(item.IsFinished)
}

func (suite *ToDoListRepositoryTestSuite) TestListIsScopedToOrganization() {
	suite.Require().NoError(suite.repo.Create(suite.factories.ToDoList.WithText(suite.mine, "first")))
	suite.Require().NoError(suite.repo.Create(suite.factories.ToDoList.WithText(suite.mine, "second")))
	suite.Require().NoError(suite.repo.Create(suite.factories.ToDoList.WithText(suite.theirs, "foreign")))

	items, err := suite.repo.ListByOrganization(suite.mine.ID)

	suite.NoError(err)
	suite.Require().Len(items, 2)
	for _, item := range items {
		suite.Equal(suite.mine.ID, item.OrganizationID)
		suite.Equal("Test Company", item.Organization.Name)
	}
}

func (suite *ToDoListRepositoryTestSuite) TestListEmpty() {
	items, err := suite.repo.ListByOrganization(suite.mine.ID)

	suite.NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
}

func (suite *ToDoListRepositoryTestSuite) TestGetByIDCrossTenant() {
	item := suite.factories.ToDoList.WithOrganization(suite.theirs)
	suite.Require().NoError(suite.repo.Create(item))

	_, err := suite.repo.GetByID(suite.mine.ID, item.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	got, err := suite.repo.GetByID(suite.theirs.ID, item.ID)
	suite.NoError(err)
	suite.Equal(item.Text, got.Text)
}

func (suite *ToDoListRepositoryTestSuite) TestUpdate() {
	item := suite.factories.ToDoList.WithText(suite.mine, "test")
	suite.Require().NoError(suite.repo.Create(item))

	item.Text = "done"
	item.IsFinished = true
	suite.NoError(suite.repo.Update(suite.mine.ID, item))

	got, err := suite.repo.GetByID(suite.mine.ID, item.ID)
	suite.NoError(err)
	suite.Equal("done", got.Text)
	suite.True(got.IsFinished)
}

func (suite *ToDoListRepositoryTestSuite) TestUpdateCrossTenant() {
	item := suite.factories.ToDoList.WithText(suite.theirs, "test")
	suite.Require().NoError(suite.repo.Create(item))

	item.Text = "hijacked"
	err := suite.repo.Update(suite.mine.ID, item)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	got, err := suite.repo.GetByID(suite.theirs.ID, item.ID)
	suite.NoError(err)
	suite.Equal("test", got.Text)
}

func (suite *ToDoListRepositoryTestSuite) TestDelete() {
	item := suite.factories.ToDoList.WithOrganization(suite.theirs)
	suite.Require().NoError(suite.repo.Create(item))

	suite.ErrorIs(suite.repo.Delete(suite.mine.ID, item.ID), gorm.ErrRecordNotFound)
	suite.NoError(suite.repo.Delete(suite.theirs.ID, item.ID))
	suite.ErrorIs(suite.repo.Delete(suite.theirs.ID, item.ID), gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.repo.Delete(suite.theirs.ID, uuid.New()), gorm.ErrRecordNotFound)
}

func TestToDoListRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ToDoListRepositoryTestSuite))
}
