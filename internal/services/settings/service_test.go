package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/guildops/sessionbot/internal/models"
	settingRepo "github.com/guildops/sessionbot/internal/repositories/setting"
	settingMocks "github.com/guildops/sessionbot/internal/repositories/setting/mocks"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *settingMocks.MockRepository
	ctx      context.Context
}

func (s *SettingsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = settingMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()
}

func (s *SettingsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *SettingsServiceTestSuite) newService(persisted []*models.Setting) Service {
	s.mockRepo.EXPECT().
		ListSettings(s.ctx, gomock.Any()).
		Return(&settingRepo.ListSettingsOutput{Settings: persisted}, nil)

	svc, err := New(s.ctx, &Config{Repo: s.mockRepo})
	s.Require().NoError(err)
	return svc
}

func (s *SettingsServiceTestSuite) TestNew_WarmsCacheFromStore() {
	svc := s.newService([]*models.Setting{
		{Name: KeySessionChannel, Type: models.SettingTypeChannel, Value: "123456789"},
	})

	value, err := svc.GetChannel(s.ctx, KeySessionChannel)
	s.NoError(err)
	s.Equal("123456789", value)
}

func (s *SettingsServiceTestSuite) TestNew_IgnoresUndeclaredRows() {
	svc := s.newService([]*models.Setting{
		{Name: "legacy_key", Type: models.SettingTypeText, Value: "whatever"},
	})

	_, err := svc.Get(s.ctx, "legacy_key")
	s.ErrorIs(err, ErrUnknownKey)
}

func (s *SettingsServiceTestSuite) TestNew_IgnoresMismatchedType() {
	svc := s.newService([]*models.Setting{
		{Name: KeySessionChannel, Type: models.SettingTypeText, Value: "123456789"},
	})

	_, err := svc.GetChannel(s.ctx, KeySessionChannel)
	s.ErrorIs(err, ErrSettingUnset)
}

func (s *SettingsServiceTestSuite) TestGet_UnsetKey() {
	svc := s.newService(nil)

	_, err := svc.Get(s.ctx, KeySessionChannel)
	s.ErrorIs(err, ErrSettingUnset)
}

func (s *SettingsServiceTestSuite) TestGetChannel_WrongTypeKey() {
	svc := s.newService(nil)

	_, err := svc.GetInteger(s.ctx, KeySessionChannel)
	s.ErrorIs(err, ErrUnknownKey)
}

func (s *SettingsServiceTestSuite) TestSet_NormalizesChannelMention() {
	svc := s.newService(nil)

	s.mockRepo.EXPECT().
		SaveSetting(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *settingRepo.SaveSettingInput) error {
			s.Equal(KeySessionChannel, input.Setting.Name)
			s.Equal(models.SettingTypeChannel, input.Setting.Type)
			s.Equal("987654321", input.Setting.Value)
			return nil
		})

	err := svc.Set(s.ctx, KeySessionChannel, "<#987654321>")
	s.NoError(err)

	value, err := svc.GetChannel(s.ctx, KeySessionChannel)
	s.NoError(err)
	s.Equal("987654321", value)
}

func (s *SettingsServiceTestSuite) TestSet_AcceptsBareSnowflake() {
	svc := s.newService(nil)

	s.mockRepo.EXPECT().
		SaveSetting(s.ctx, gomock.Any()).
		Return(nil)

	err := svc.Set(s.ctx, KeySessionChannel, "987654321")
	s.NoError(err)
}

func (s *SettingsServiceTestSuite) TestSet_RejectsMalformedChannel() {
	svc := s.newService(nil)

	err := svc.Set(s.ctx, KeySessionChannel, "general")
	s.ErrorIs(err, ErrInvalidValue)
}

func (s *SettingsServiceTestSuite) TestSet_RejectsUndeclaredKey() {
	svc := s.newService(nil)

	err := svc.Set(s.ctx, "made_up", "value")
	s.ErrorIs(err, ErrUnknownKey)
}

func (s *SettingsServiceTestSuite) TestKeys_ListsDeclaredKeys() {
	svc := s.newService(nil)

	s.Contains(svc.Keys(), KeySessionChannel)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
