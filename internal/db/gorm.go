package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Condition is a single WHERE clause with its positional arguments.
type Condition struct {
	Query string
	Args  []any
}

// Filter narrows a Find call. A zero Limit means no limit.
type Filter struct {
	Conditions []Condition
	OrderBy    string
	Limit      int
}

type GormDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return New(db), nil
}

func New(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	if err := f.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetAll(ctx context.Context, entities any) error {
	if err := f.db.WithContext(ctx).Find(entities).Error; err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}
	return nil
}

func (f *GormDB) Find(ctx context.Context, filter Filter, entities any) error {
	tx := f.db.WithContext(ctx)
	for _, cond := range filter.Conditions {
		tx = tx.Where(cond.Query, cond.Args...)
	}
	if filter.OrderBy != "" {
		tx = tx.Order(filter.OrderBy)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("finding records: %w", err)
	}
	return nil
}

func (f *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
