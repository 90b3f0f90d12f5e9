// Package database owns the database engine and hands out request-scoped
// sessions.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Aidin1998/contacts_manager/internal/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultQueryTimeout bounds a session when no timeout is configured.
const DefaultQueryTimeout = 5 * time.Second

// ErrNotInitialized is returned when a session is requested from a manager
// that was never constructed. It is a configuration error, not a
// connectivity one.
var ErrNotInitialized = errors.New("database session manager is not initialized")

// SessionManager holds one engine and its connection pool. It keeps no
// per-call state and is safe for concurrent use.
type SessionManager struct {
	db      *gorm.DB
	dialect string
	timeout time.Duration
	logger  *zap.Logger
}

// NewSessionManager builds the engine for cfg.URL. The database is not
// contacted until the first session is opened.
func NewSessionManager(cfg config.DatabaseConfig, logger *zap.Logger) (*SessionManager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dialector, dialect, err := Dialector(cfg.URL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}

	if dialect == DialectSQLite {
		// One writer; keeping the connection alive also keeps in-memory
		// databases from disappearing.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}

	logger.Info("database engine initialized",
		zap.String("dialect", dialect),
		zap.Duration("query_timeout", timeout))

	return &SessionManager{
		db:      db,
		dialect: dialect,
		timeout: timeout,
		logger:  logger.Named("database"),
	}, nil
}

// Session runs fn inside one transaction bounded by the query timeout.
//
// A nil return commits. A non-nil return rolls back and is passed back to the
// caller unchanged. A panic rolls back and is re-raised. The transaction is
// finished on every path.
func (m *SessionManager) Session(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if m == nil || m.db == nil {
		return ErrNotInitialized
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin session: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			m.rollback(tx)
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		m.rollback(tx)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

func (m *SessionManager) rollback(tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
		m.logger.Warn("session rollback failed", zap.Error(err))
	}
}

// Ping checks connectivity outside of a session.
func (m *SessionManager) Ping(ctx context.Context) error {
	if m == nil || m.db == nil {
		return ErrNotInitialized
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// AutoMigrate creates or updates tables for the given models.
func (m *SessionManager) AutoMigrate(models ...any) error {
	if m == nil || m.db == nil {
		return ErrNotInitialized
	}
	return m.db.AutoMigrate(models...)
}

// Stats returns connection pool statistics.
func (m *SessionManager) Stats() sql.DBStats {
	if m == nil || m.db == nil {
		return sql.DBStats{}
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}

// Dialect returns the dialect name resolved from the connection URL.
func (m *SessionManager) Dialect() string {
	if m == nil {
		return ""
	}
	return m.dialect
}

// Close releases the connection pool.
func (m *SessionManager) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
