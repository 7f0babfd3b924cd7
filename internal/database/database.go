package database

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"jigarafy/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// pendingPairIndex allows at most one pending request per unordered user pair.
const pendingPairIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_friend_requests_pending_pair
ON friend_requests (LEAST(sender_id, recipient_id), GREATEST(sender_id, recipient_id))
WHERE status = 'pending'`

// Connect opens the postgres connection and runs migrations.
func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := open(postgres.Open(dsn), log)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("database migrated")
	return db, nil
}

func open(dialector gorm.Dialector, log *zap.Logger) (*gorm.DB, error) {
	// GORM's own SQL logger stays on the standard logger
	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	log.Info("database connection established",
		zap.Int("max_open_conns", maxOpenConns),
		zap.Int("max_idle_conns", maxIdleConns))
	return db, nil
}

// Migrate creates the schema, including the custom join table and the pending pair index.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.User{}, "Friends", &models.Friendship{}); err != nil {
		return fmt.Errorf("failed to set up friends join table: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Friendship{}, &models.FriendRequest{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := db.Exec(pendingPairIndex).Error; err != nil {
		return fmt.Errorf("failed to create pending pair index: %w", err)
	}
	return nil
}
