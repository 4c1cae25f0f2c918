package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/guildops/sessionbot/internal/common/clock"
	"github.com/guildops/sessionbot/internal/config"
	"github.com/guildops/sessionbot/internal/handlers/discord"
	"github.com/guildops/sessionbot/internal/logger"
	"github.com/guildops/sessionbot/internal/models"
	groupRepo "github.com/guildops/sessionbot/internal/repositories/group"
	sessionRepo "github.com/guildops/sessionbot/internal/repositories/session"
	settingRepo "github.com/guildops/sessionbot/internal/repositories/setting"
	groupService "github.com/guildops/sessionbot/internal/services/group"
	sessionService "github.com/guildops/sessionbot/internal/services/session"
	settingsService "github.com/guildops/sessionbot/internal/services/settings"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	flag.Parse()

	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(&cfg.Log, cfg.Mode); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		zap.L().Fatal("failed to open database",
			zap.String("path", cfg.Database.Path),
			zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Group{},
		&models.Session{},
		&models.SessionGroup{},
		&models.SessionParticipant{},
		&models.Setting{},
	); err != nil {
		zap.L().Fatal("failed to migrate database", zap.Error(err))
	}

	groupRepository, err := groupRepo.NewGorm(&groupRepo.Config{DB: db})
	if err != nil {
		zap.L().Fatal("failed to create group repository", zap.Error(err))
	}

	// The Redis cache is optional; without it the group list is served
	// straight from the database.
	var groups groupRepo.Repository = groupRepository
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			zap.L().Warn("redis unreachable, group cache disabled",
				zap.String("addr", cfg.Redis.Addr),
				zap.Error(err))
		} else {
			groups, err = groupRepo.NewCache(&groupRepo.CacheConfig{
				RedisClient: redisClient,
				Inner:       groupRepository,
			})
			if err != nil {
				zap.L().Fatal("failed to create group cache", zap.Error(err))
			}
		}
	}

	sessionRepository, err := sessionRepo.NewGorm(&sessionRepo.Config{DB: db})
	if err != nil {
		zap.L().Fatal("failed to create session repository", zap.Error(err))
	}

	settingRepository, err := settingRepo.NewGorm(&settingRepo.Config{DB: db})
	if err != nil {
		zap.L().Fatal("failed to create setting repository", zap.Error(err))
	}

	clk := clock.New()

	groupSvc, err := groupService.New(&groupService.Config{
		Repo:  groups,
		Clock: clk,
	})
	if err != nil {
		zap.L().Fatal("failed to create group service", zap.Error(err))
	}

	sessionSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo: sessionRepository,
		GroupRepo:   groups,
		Clock:       clk,
	})
	if err != nil {
		zap.L().Fatal("failed to create session service", zap.Error(err))
	}

	settingsSvc, err := settingsService.New(context.Background(), &settingsService.Config{
		Repo: settingRepository,
	})
	if err != nil {
		zap.L().Fatal("failed to create settings service", zap.Error(err))
	}

	bot, err := discord.New(&discord.Config{
		Token:           cfg.Discord.Token,
		ApplicationID:   cfg.Discord.ApplicationID,
		GuildID:         cfg.Discord.GuildID,
		GroupService:    groupSvc,
		SessionService:  sessionSvc,
		SettingsService: settingsSvc,
	})
	if err != nil {
		zap.L().Fatal("failed to create bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		zap.L().Fatal("failed to start bot", zap.Error(err))
	}

	zap.L().Info("bot is running, press CTRL-C to exit")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zap.L().Info("shutting down")
	if err := bot.Stop(); err != nil {
		zap.L().Error("failed to stop bot cleanly", zap.Error(err))
	}
}
