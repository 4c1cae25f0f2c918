package session

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

type SessionGormTestSuite struct {
	suite.Suite
	ctx  context.Context
	db   *gorm.DB
	repo *gormRepository

	startsAt time.Time
}

func (s *SessionGormTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(
		&models.Group{},
		&models.Session{},
		&models.SessionGroup{},
		&models.SessionParticipant{},
	))

	repo, err := NewGorm(&Config{DB: db})
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.db = db
	s.repo = repo
	s.startsAt = time.Date(2024, 3, 16, 20, 30, 0, 0, time.UTC)
}

func (s *SessionGormTestSuite) createSession() *models.Session {
	created, err := s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: &models.Session{
			Timestamp: s.startsAt,
			CreatedBy: "creator-1",
			Active:    true,
		},
	})
	s.Require().NoError(err)
	return created
}

func (s *SessionGormTestSuite) createGroup(name, acronym string) *models.Group {
	g := &models.Group{
		Name:    name,
		Acronym: acronym,
		Emoji:   "⚔️",
		AddedBy: "creator-1",
		AddedAt: s.startsAt,
	}
	s.Require().NoError(s.db.Create(g).Error)
	return g
}

func (s *SessionGormTestSuite) TestCreateAndGetSession() {
	created := s.createSession()
	s.NotZero(created.ID)

	fetched, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: created.ID})
	s.NoError(err)
	s.Equal(created.ID, fetched.ID)
	s.Equal("creator-1", fetched.CreatedBy)
	s.True(fetched.Active)
	s.Nil(fetched.MessageID)
}

func (s *SessionGormTestSuite) TestGetSession_NotFound() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: 42})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionGormTestSuite) TestDeleteSession_SweepsLinksAndParticipants() {
	created := s.createSession()
	g := s.createGroup("Raiders", "RAID")

	s.Require().NoError(s.repo.AddSessionGroup(s.ctx, &AddSessionGroupInput{
		SessionID: created.ID,
		GroupID:   g.ID,
	}))
	s.Require().NoError(s.repo.UpsertParticipant(s.ctx, &UpsertParticipantInput{
		Participant: &models.SessionParticipant{
			SessionID: created.ID,
			UserID:    "user-1",
			GroupID:   &g.ID,
			UpdatedAt: s.startsAt,
		},
	}))

	s.NoError(s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: created.ID}))

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: created.ID})
	s.ErrorIs(err, ErrSessionNotFound)

	var linkCount int64
	s.Require().NoError(s.db.Model(&models.SessionGroup{}).Count(&linkCount).Error)
	s.Zero(linkCount)

	var participantCount int64
	s.Require().NoError(s.db.Model(&models.SessionParticipant{}).Count(&participantCount).Error)
	s.Zero(participantCount)
}

func (s *SessionGormTestSuite) TestDeleteSession_NotFound() {
	err := s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: 42})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionGormTestSuite) TestSetSessionMessage() {
	created := s.createSession()

	s.NoError(s.repo.SetSessionMessage(s.ctx, &SetSessionMessageInput{
		SessionID: created.ID,
		MessageID: "msg-123",
	}))

	fetched, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: created.ID})
	s.NoError(err)
	s.Require().NotNil(fetched.MessageID)
	s.Equal("msg-123", *fetched.MessageID)
}

func (s *SessionGormTestSuite) TestSetSessionActive() {
	created := s.createSession()

	s.NoError(s.repo.SetSessionActive(s.ctx, &SetSessionActiveInput{
		SessionID: created.ID,
		Active:    false,
	}))

	fetched, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: created.ID})
	s.NoError(err)
	s.False(fetched.Active)
}

func (s *SessionGormTestSuite) TestSetSessionActive_NotFound() {
	err := s.repo.SetSessionActive(s.ctx, &SetSessionActiveInput{SessionID: 42, Active: false})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionGormTestSuite) TestGetSessionGroups() {
	created := s.createSession()
	raiders := s.createGroup("Raiders", "RAID")
	casuals := s.createGroup("Casuals", "CAS")
	s.createGroup("Unattached", "UN")

	s.Require().NoError(s.repo.AddSessionGroup(s.ctx, &AddSessionGroupInput{
		SessionID: created.ID,
		GroupID:   raiders.ID,
	}))
	s.Require().NoError(s.repo.AddSessionGroup(s.ctx, &AddSessionGroupInput{
		SessionID: created.ID,
		GroupID:   casuals.ID,
	}))

	output, err := s.repo.GetSessionGroups(s.ctx, &GetSessionGroupsInput{SessionID: created.ID})
	s.NoError(err)
	s.Require().Len(output.Groups, 2)
	s.Equal(raiders.ID, output.Groups[0].ID)
	s.Equal(casuals.ID, output.Groups[1].ID)
}

func (s *SessionGormTestSuite) TestAddSessionGroup_DuplicateRejected() {
	created := s.createSession()
	g := s.createGroup("Raiders", "RAID")

	s.Require().NoError(s.repo.AddSessionGroup(s.ctx, &AddSessionGroupInput{
		SessionID: created.ID,
		GroupID:   g.ID,
	}))
	err := s.repo.AddSessionGroup(s.ctx, &AddSessionGroupInput{
		SessionID: created.ID,
		GroupID:   g.ID,
	})
	s.Error(err)
}

func (s *SessionGormTestSuite) TestGetParticipant_NotFound() {
	created := s.createSession()

	_, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{
		SessionID: created.ID,
		UserID:    "user-1",
	})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *SessionGormTestSuite) TestUpsertParticipant_InsertThenReplace() {
	created := s.createSession()
	g := s.createGroup("Raiders", "RAID")

	s.Require().NoError(s.repo.UpsertParticipant(s.ctx, &UpsertParticipantInput{
		Participant: &models.SessionParticipant{
			SessionID: created.ID,
			UserID:    "user-1",
			GroupID:   &g.ID,
			UpdatedAt: s.startsAt,
		},
	}))

	// The second write for the same (session, user) pair replaces the row
	s.Require().NoError(s.repo.UpsertParticipant(s.ctx, &UpsertParticipantInput{
		Participant: &models.SessionParticipant{
			SessionID: created.ID,
			UserID:    "user-1",
			Absent:    true,
			UpdatedAt: s.startsAt.Add(time.Minute),
		},
	}))

	fetched, err := s.repo.GetParticipant(s.ctx, &GetParticipantInput{
		SessionID: created.ID,
		UserID:    "user-1",
	})
	s.NoError(err)
	s.True(fetched.Absent)
	s.Nil(fetched.GroupID)

	var count int64
	s.Require().NoError(s.db.Model(&models.SessionParticipant{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *SessionGormTestSuite) TestGetAttendance_Aggregates() {
	created := s.createSession()
	raiders := s.createGroup("Raiders", "RAID")
	casuals := s.createGroup("Casuals", "CAS")

	rows := []*models.SessionParticipant{
		{SessionID: created.ID, UserID: "user-1", GroupID: &raiders.ID},
		{SessionID: created.ID, UserID: "user-2", GroupID: &raiders.ID, Late: true},
		{SessionID: created.ID, UserID: "user-3", GroupID: &casuals.ID},
		{SessionID: created.ID, UserID: "user-4", Absent: true},
		{SessionID: created.ID, UserID: "user-5", Absent: true},
	}
	for _, row := range rows {
		row.UpdatedAt = s.startsAt
		s.Require().NoError(s.repo.UpsertParticipant(s.ctx, &UpsertParticipantInput{Participant: row}))
	}

	output, err := s.repo.GetAttendance(s.ctx, &GetAttendanceInput{SessionID: created.ID})
	s.NoError(err)
	s.Equal(int64(2), output.Absent)
	s.Equal(int64(1), output.Late)
	s.Equal(map[int64]int64{raiders.ID: 2, casuals.ID: 1}, output.GroupCounts)
}

func (s *SessionGormTestSuite) TestGetAttendance_EmptySession() {
	created := s.createSession()

	output, err := s.repo.GetAttendance(s.ctx, &GetAttendanceInput{SessionID: created.ID})
	s.NoError(err)
	s.Zero(output.Absent)
	s.Zero(output.Late)
	s.Empty(output.GroupCounts)
}

func TestSessionGormTestSuite(t *testing.T) {
	suite.Run(t, new(SessionGormTestSuite))
}
