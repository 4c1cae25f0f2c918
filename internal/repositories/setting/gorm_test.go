package setting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/guildops/sessionbot/internal/models"
)

type SettingGormTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *gormRepository
}

func (s *SettingGormTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&models.Setting{}))

	repo, err := NewGorm(&Config{DB: db})
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.repo = repo
}

func (s *SettingGormTestSuite) TestSaveAndGetSetting() {
	s.Require().NoError(s.repo.SaveSetting(s.ctx, &SaveSettingInput{
		Setting: &models.Setting{
			Name:  "session_channel",
			Type:  models.SettingTypeChannel,
			Value: "123456789",
		},
	}))

	fetched, err := s.repo.GetSetting(s.ctx, &GetSettingInput{Name: "session_channel"})
	s.NoError(err)
	s.Equal(models.SettingTypeChannel, fetched.Type)
	s.Equal("123456789", fetched.Value)
}

func (s *SettingGormTestSuite) TestSaveSetting_ReplacesOnSameName() {
	s.Require().NoError(s.repo.SaveSetting(s.ctx, &SaveSettingInput{
		Setting: &models.Setting{
			Name:  "session_channel",
			Type:  models.SettingTypeChannel,
			Value: "123456789",
		},
	}))
	s.Require().NoError(s.repo.SaveSetting(s.ctx, &SaveSettingInput{
		Setting: &models.Setting{
			Name:  "session_channel",
			Type:  models.SettingTypeChannel,
			Value: "987654321",
		},
	}))

	fetched, err := s.repo.GetSetting(s.ctx, &GetSettingInput{Name: "session_channel"})
	s.NoError(err)
	s.Equal("987654321", fetched.Value)

	listed, err := s.repo.ListSettings(s.ctx, &ListSettingsInput{})
	s.NoError(err)
	s.Len(listed.Settings, 1)
}

func (s *SettingGormTestSuite) TestGetSetting_NotFound() {
	_, err := s.repo.GetSetting(s.ctx, &GetSettingInput{Name: "missing"})
	s.ErrorIs(err, ErrSettingNotFound)
}

func (s *SettingGormTestSuite) TestListSettings_OrderedByName() {
	s.Require().NoError(s.repo.SaveSetting(s.ctx, &SaveSettingInput{
		Setting: &models.Setting{Name: "zeta", Type: models.SettingTypeText, Value: "z"},
	}))
	s.Require().NoError(s.repo.SaveSetting(s.ctx, &SaveSettingInput{
		Setting: &models.Setting{Name: "alpha", Type: models.SettingTypeText, Value: "a"},
	}))

	listed, err := s.repo.ListSettings(s.ctx, &ListSettingsInput{})
	s.NoError(err)
	s.Require().Len(listed.Settings, 2)
	s.Equal("alpha", listed.Settings[0].Name)
	s.Equal("zeta", listed.Settings[1].Name)
}

func TestSettingGormTestSuite(t *testing.T) {
	suite.Run(t, new(SettingGormTestSuite))
}
