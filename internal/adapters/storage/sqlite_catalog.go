package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/peekhq/peek/internal/config"
	"github.com/peekhq/peek/internal/domain"
	"github.com/peekhq/peek/internal/logging"
	"github.com/peekhq/peek/internal/ports"
)

const defaultRetries = 5

// SQLiteCatalog implements ports.CatalogRepository using GORM
type SQLiteCatalog struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.CatalogRepository = (*SQLiteCatalog)(nil)

// gormLogger wraps the peek logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	query, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", query,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", query,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", query,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("PEEK_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteCatalog opens (creating if needed) the catalog database at dbPath
func NewSQLiteCatalog(dbPath string) (*SQLiteCatalog, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets `peek serve` and `peek catalog` share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&ItemModel{}, &ItemMetadataModel{}, &ItemIssueModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	logging.Logger.Debug("Catalog database opened", "path", dbPath)
	return &SQLiteCatalog{db: db}, nil
}

// NewSQLiteCatalogForPath opens catalog.db inside a peek home directory
func NewSQLiteCatalogForPath(peekHomePath string) (*SQLiteCatalog, error) {
	return NewSQLiteCatalog(filepath.Join(peekHomePath, "catalog.db"))
}

// Close closes the database connection
func (r *SQLiteCatalog) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func (r *SQLiteCatalog) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Metadata", orderByPosition).
		Preload("Issues", orderByPosition)
}

// Count returns the number of stored items
func (r *SQLiteCatalog) Count(ctx context.Context) (int, error) {
	var n int64
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&ItemModel{}).Count(&n).Error
	}, defaultRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return int(n), nil
}

// FetchPage returns up to count items in catalog order starting at offset
func (r *SQLiteCatalog) FetchPage(ctx context.Context, offset, count int) ([]domain.PreviewItem, error) {
	if offset < 0 {
		return nil, fmt.Errorf("invalid page offset %d", offset)
	}
	if count <= 0 {
		return nil, nil
	}

	var models []ItemModel
	err := withRetry(func() error {
		return r.withChildren(ctx).
			Order("position").
			Offset(offset).
			Limit(count).
			Find(&models).Error
	}, defaultRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items %d..%d: %w", offset, offset+count, err)
	}

	return modelsToDomain(models), nil
}

// Get returns one item by id
func (r *SQLiteCatalog) Get(ctx context.Context, id string) (*domain.PreviewItem, error) {
	var model ItemModel
	err := withRetry(func() error {
		return r.withChildren(ctx).Where("id = ?", id).First(&model).Error
	}, defaultRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("failed to get item %s: %w", id, err)
	}

	item := itemModelToDomain(model)
	return &item, nil
}

// List returns every item in catalog order
func (r *SQLiteCatalog) List(ctx context.Context) ([]domain.PreviewItem, error) {
	var models []ItemModel
	err := withRetry(func() error {
		return r.withChildren(ctx).Order("position").Find(&models).Error
	}, defaultRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return modelsToDomain(models), nil
}

// Add appends items after the current last position, in one transaction
func (r *SQLiteCatalog) Add(ctx context.Context, items []domain.PreviewItem) error {
	if len(items) == 0 {
		return nil
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var maxPosition sql.NullInt64
			if err := tx.Model(&ItemModel{}).Select("MAX(position)").Row().Scan(&maxPosition); err != nil {
				return fmt.Errorf("failed to read last position: %w", err)
			}

			next := 0
			if maxPosition.Valid {
				next = int(maxPosition.Int64) + 1
			}

			models := make([]ItemModel, len(items))
			for i, item := range items {
				if err := item.Validate(); err != nil {
					return err
				}
				models[i] = domainToItemModel(item, next+i)
			}

			if err := tx.Create(&models).Error; err != nil {
				return fmt.Errorf("failed to insert items: %w", err)
			}
			return nil
		})
	}, defaultRetries)
}

// Clear deletes every item with its metadata and issues
func (r *SQLiteCatalog) Clear(ctx context.Context) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&ItemIssueModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete issues: %w", err)
			}
			if err := tx.Where("1 = 1").Delete(&ItemMetadataModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete metadata: %w", err)
			}
			if err := tx.Where("1 = 1").Delete(&ItemModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete items: %w", err)
			}
			return nil
		})
	}, defaultRetries)
}

func modelsToDomain(models []ItemModel) []domain.PreviewItem {
	items := make([]domain.PreviewItem, len(models))
	for i, m := range models {
		items[i] = itemModelToDomain(m)
	}
	return items
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
