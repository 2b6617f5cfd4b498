package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dinewise/internal/config"
	"dinewise/internal/models"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store владеет подключением к БД и, если настроен, клиентом Redis.
// Открывается один раз при старте процесса и закрывается при остановке.
type Store struct {
	DB    *gorm.DB
	Redis *redis.Client
	log   *slog.Logger
}

// Open подключается к настроенной БД. Redis необязателен.
func Open(dbCfg config.DatabaseConfig, redisCfg config.RedisConfig, log *slog.Logger) (*Store, error) {
	var dialector gorm.Dialector
	switch dbCfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dbCfg.DSN())
	case config.DriverMySQL:
		dialector = mysql.Open(dbCfg.DSN())
	case config.DriverSQLite, "":
		dialector = sqlite.Open(sqliteDSN(dbCfg.Path))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	s := &Store{DB: db, log: log}
	if redisCfg.Enabled() {
		s.Redis = redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})
	}

	log.Info("database connected", slog.String("driver", db.Dialector.Name()), slog.Bool("redis", s.Redis != nil))
	return s, nil
}

// slogWriter отдаёт строки gorm в общий slog вместо stdout.
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)), slog.String("component", "gorm"))
}

// gormLogger пишет ошибки и медленные запросы; ожидаемые промахи (ErrRecordNotFound) не логируются.
func gormLogger(log *slog.Logger) logger.Interface {
	return logger.New(slogWriter{log: log}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// OpenSQLite opens a store backed by the sqlite file at path. Used by tests and the CLI.
func OpenSQLite(path string, log *slog.Logger) (*Store, error) {
	return Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: path}, config.RedisConfig{}, log)
}

// sqliteDSN включает внешние ключи и заставляет конкурентные записи ждать, а не падать с SQLITE_BUSY.
func sqliteDSN(path string) string {
	return path + "?_foreign_keys=on&_busy_timeout=5000"
}

// Migrate создаёт или обновляет все таблицы.
func (s *Store) Migrate() error {
	if err := s.DB.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Ping проверяет БД и Redis, если он подключён.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	if s.Redis != nil {
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
	}
	return nil
}

// Close освобождает пул соединений и клиент Redis.
func (s *Store) Close() error {
	var firstErr error
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			firstErr = err
		}
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		if firstErr == nil {
			firstErr = err
		}
		return firstErr
	}
	if err := sqlDB.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
