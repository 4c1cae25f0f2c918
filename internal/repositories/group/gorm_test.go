package group

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/guildops/sessionbot/internal/models"
)

type GroupGormTestSuite struct {
	suite.Suite
	ctx  context.Context
	db   *gorm.DB
	repo *gormRepository

	addedAt time.Time
}

func (s *GroupGormTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&models.Group{}))

	repo, err := NewGorm(&Config{DB: db})
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.db = db
	s.repo = repo
	s.addedAt = time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
}

func (s *GroupGormTestSuite) createGroup(name, acronym string) *models.Group {
	created, err := s.repo.CreateGroup(s.ctx, &CreateGroupInput{
		Group: &models.Group{
			Name:    name,
			Acronym: acronym,
			Emoji:   "⚔️",
			AddedBy: "user-1",
			AddedAt: s.addedAt,
		},
	})
	s.Require().NoError(err)
	return created
}

func (s *GroupGormTestSuite) TestCreateAndGetGroup() {
	created := s.createGroup("Raiders", "RAID")
	s.NotZero(created.ID)

	fetched, err := s.repo.GetGroup(s.ctx, &GetGroupInput{GroupID: created.ID})
	s.NoError(err)
	s.Equal("Raiders", fetched.Name)
	s.Equal("RAID", fetched.Acronym)
	s.Equal("user-1", fetched.AddedBy)
	s.Nil(fetched.Description)
}

func (s *GroupGormTestSuite) TestGetGroup_NotFound() {
	_, err := s.repo.GetGroup(s.ctx, &GetGroupInput{GroupID: 42})
	s.ErrorIs(err, ErrGroupNotFound)
}

func (s *GroupGormTestSuite) TestListGroups_OrderedByID() {
	first := s.createGroup("Raiders", "RAID")
	second := s.createGroup("Casuals", "CAS")

	output, err := s.repo.ListGroups(s.ctx, &ListGroupsInput{})
	s.NoError(err)
	s.Require().Len(output.Groups, 2)
	s.Equal(first.ID, output.Groups[0].ID)
	s.Equal(second.ID, output.Groups[1].ID)
}

func (s *GroupGormTestSuite) TestUpdateGroup() {
	created := s.createGroup("Raiders", "RAID")

	description := "Progress roster"
	created.Name = "Mythic Raiders"
	created.Description = &description
	s.NoError(s.repo.UpdateGroup(s.ctx, &UpdateGroupInput{Group: created}))

	fetched, err := s.repo.GetGroup(s.ctx, &GetGroupInput{GroupID: created.ID})
	s.NoError(err)
	s.Equal("Mythic Raiders", fetched.Name)
	s.Require().NotNil(fetched.Description)
	s.Equal("Progress roster", *fetched.Description)
}

func (s *GroupGormTestSuite) TestUpdateGroup_ClearsDescription() {
	created := s.createGroup("Raiders", "RAID")

	description := "Progress roster"
	created.Description = &description
	s.Require().NoError(s.repo.UpdateGroup(s.ctx, &UpdateGroupInput{Group: created}))

	created.Description = nil
	s.Require().NoError(s.repo.UpdateGroup(s.ctx, &UpdateGroupInput{Group: created}))

	fetched, err := s.repo.GetGroup(s.ctx, &GetGroupInput{GroupID: created.ID})
	s.NoError(err)
	s.Nil(fetched.Description)
}

func (s *GroupGormTestSuite) TestUpdateGroup_NotFound() {
	err := s.repo.UpdateGroup(s.ctx, &UpdateGroupInput{
		Group: &models.Group{ID: 42, Name: "Ghost"},
	})
	s.ErrorIs(err, ErrGroupNotFound)
}

func (s *GroupGormTestSuite) TestDeleteGroup() {
	created := s.createGroup("Raiders", "RAID")

	s.NoError(s.repo.DeleteGroup(s.ctx, &DeleteGroupInput{GroupID: created.ID}))

	_, err := s.repo.GetGroup(s.ctx, &GetGroupInput{GroupID: created.ID})
	s.ErrorIs(err, ErrGroupNotFound)
}

func (s *GroupGormTestSuite) TestDeleteGroup_NotFound() {
	err := s.repo.DeleteGroup(s.ctx, &DeleteGroupInput{GroupID: 42})
	s.ErrorIs(err, ErrGroupNotFound)
}

func TestGroupGormTestSuite(t *testing.T) {
	suite.Run(t, new(GroupGormTestSuite))
}
