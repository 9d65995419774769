package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"equipment-management-service/pkg/common"
	"equipment-management-service/pkg/models"
)

// DB wraps the gorm connection shared by the service layer.
type DB struct {
	Conn *gorm.DB
}

// Config carries connection pool settings. It is passed explicitly at
// construction; there is no package-level connection state.
type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// Open connects through the given dialector, applies pool limits, runs the
// schema migration and installs the guard indexes.
func Open(dialector gorm.Dialector, cfg Config) (*DB, error) {
	logger := common.GetLoggerWith(common.LoggerNameDB)

	conn, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Connected to database", zap.String("dialector", dialector.Name()))

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	if dialector.Name() == "sqlite" {
		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable sqlite foreign key support: %w", err)
		}
		if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			return nil, fmt.Errorf("failed to set sqlite journal mode: %w", err)
		}
	}

	if err := conn.AutoMigrate(&models.Machine{}, &models.Failure{}); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	// Partial unique index backing the one-active-failure-per-machine
	// invariant. The rules layer checks it inside a transaction; this is
	// the atomic backstop against concurrent inserts.
	if err := conn.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_failures_active_machine " +
			"ON failures(machine_id) WHERE NOT is_resolved",
	).Error; err != nil {
		return nil, fmt.Errorf("failed to create active failure guard index: %w", err)
	}

	logger.Info("Database migration completed")

	return &DB{Conn: conn}, nil
}

func UseSqliteDialector(path string) gorm.Dialector {
	if path == "" {
		path = "equipment.db"
	}
	return sqlite.Open(path)
}

// UseMemorySqliteDialector names each in-memory database uniquely so that
// independently opened connections (for example per test) do not share state.
func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
}

func UsePostgresDialector(dsn string) gorm.Dialector {
	return postgres.Open(dsn)
}
