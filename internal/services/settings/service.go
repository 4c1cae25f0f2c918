package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/guildops/sessionbot/internal/models"
	settingRepo "github.com/guildops/sessionbot/internal/repositories/setting"
)

// Declared setting keys. Every key has a fixed type; writes to undeclared
// keys are rejected.
const (
	// KeySessionChannel is the channel the session status messages are
	// published to
	KeySessionChannel = "session_channel"
)

// Schema maps each declared key to its type
var Schema = map[string]models.SettingType{
	KeySessionChannel: models.SettingTypeChannel,
}

// Define errors
var (
	ErrUnknownKey   = errors.New("unknown setting key")
	ErrSettingUnset = errors.New("setting has no value")
	ErrInvalidValue = errors.New("value does not match the setting type")
)

var (
	channelMentionRe = regexp.MustCompile(`^<#([0-9]+)>$`)
	roleMentionRe    = regexp.MustCompile(`^<@&([0-9]+)>$`)
	snowflakeRe      = regexp.MustCompile(`^[0-9]+$`)
)

// Service is the typed settings registry. Values are cached in memory and
// written through to the store.
type Service interface {
	// Get returns the raw stored value for a declared key
	Get(ctx context.Context, key string) (string, error)

	// GetChannel returns a channel-typed setting as a bare channel ID
	GetChannel(ctx context.Context, key string) (string, error)

	// GetInteger returns an integer-typed setting
	GetInteger(ctx context.Context, key string) (int64, error)

	// Set validates raw against the key's declared type and persists it
	Set(ctx context.Context, key, raw string) error

	// Keys returns the declared keys in no particular order
	Keys() []string
}

// Config holds the dependencies for the settings service
type Config struct {
	// Repo is the settings repository
	Repo settingRepo.Repository
}

// service implements the Service interface
type service struct {
	repo settingRepo.Repository

	mu     sync.RWMutex
	values map[string]string
}

// New creates the settings service and warms its cache from the store.
// Persisted settings with an undeclared key or a mismatched type are logged
// and ignored.
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repo == nil {
		return nil, errors.New("setting repository cannot be nil")
	}

	s := &service{
		repo:   cfg.Repo,
		values: make(map[string]string),
	}

	listed, err := cfg.Repo.ListSettings(ctx, &settingRepo.ListSettingsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	for _, row := range listed.Settings {
		declared, ok := Schema[row.Name]
		if !ok {
			zap.L().Warn("ignoring undeclared setting", zap.String("key", row.Name))
			continue
		}
		if declared != row.Type {
			zap.L().Warn("ignoring setting with mismatched type",
				zap.String("key", row.Name),
				zap.String("stored_type", string(row.Type)),
				zap.String("declared_type", string(declared)))
			continue
		}
		s.values[row.Name] = row.Value
	}

	zap.L().Info("settings loaded",
		zap.Int("loaded", len(s.values)),
		zap.Int("persisted", len(listed.Settings)))

	return s, nil
}

// Get returns the raw stored value for a declared key
func (s *service) Get(ctx context.Context, key string) (string, error) {
	if _, ok := Schema[key]; !ok {
		return "", ErrUnknownKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrSettingUnset
	}
	return value, nil
}

// GetChannel returns a channel-typed setting as a bare channel ID
func (s *service) GetChannel(ctx context.Context, key string) (string, error) {
	if Schema[key] != models.SettingTypeChannel {
		return "", ErrUnknownKey
	}
	return s.Get(ctx, key)
}

// GetInteger returns an integer-typed setting
func (s *service) GetInteger(ctx context.Context, key string) (int64, error) {
	if Schema[key] != models.SettingTypeInteger {
		return 0, ErrUnknownKey
	}

	raw, err := s.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// Set validates raw against the key's declared type, normalizes it, and
// writes it through to the store and the in-memory cache
func (s *service) Set(ctx context.Context, key, raw string) error {
	declared, ok := Schema[key]
	if !ok {
		return ErrUnknownKey
	}

	normalized, err := normalize(declared, raw)
	if err != nil {
		return err
	}

	err = s.repo.SaveSetting(ctx, &settingRepo.SaveSettingInput{
		Setting: &models.Setting{
			Name:  key,
			Type:  declared,
			Value: normalized,
		},
	})
	if err != nil {
		zap.L().Error("failed to persist setting", zap.String("key", key), zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.values[key] = normalized
	s.mu.Unlock()

	zap.L().Info("setting updated", zap.String("key", key))
	return nil
}

// Keys returns the declared keys in no particular order
func (s *service) Keys() []string {
	keys := make([]string, 0, len(Schema))
	for key := range Schema {
		keys = append(keys, key)
	}
	return keys
}

// normalize applies the per-type parse rule and returns the canonical
// stored form
func normalize(settingType models.SettingType, raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	switch settingType {
	case models.SettingTypeText:
		if raw == "" {
			return "", ErrInvalidValue
		}
		return raw, nil

	case models.SettingTypeInteger:
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return "", ErrInvalidValue
		}
		return raw, nil

	case models.SettingTypeStructured:
		if !json.Valid([]byte(raw)) {
			return "", ErrInvalidValue
		}
		return raw, nil

	case models.SettingTypeChannel:
		if m := channelMentionRe.FindStringSubmatch(raw); m != nil {
			return m[1], nil
		}
		if snowflakeRe.MatchString(raw) {
			return raw, nil
		}
		return "", ErrInvalidValue

	case models.SettingTypeRole:
		if m := roleMentionRe.FindStringSubmatch(raw); m != nil {
			return m[1], nil
		}
		if snowflakeRe.MatchString(raw) {
			return raw, nil
		}
		return "", ErrInvalidValue

	default:
		return "", ErrInvalidValue
	}
}
