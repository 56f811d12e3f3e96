// Package history persists the per-user question/answer log in SQLite.
// The log is append-only; records are never updated or deleted by the
// application.
package history

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/monjearse/eda-app/types"
)

// Record is one persisted question/answer pair.
type Record struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	User      string    `gorm:"index" json:"user"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name the UI and older tooling expect.
func (Record) TableName() string { return "qa_history" }

// Filter narrows a history query. Nil date bounds are open; bounds are
// inclusive and compared at day granularity. An empty User matches all
// users.
type Filter struct {
	User  string
	Start *time.Time
	End   *time.Time
	Limit int
}

// Store wraps the SQLite-backed Q/A log.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Open opens (or creates) the history database at path and migrates the
// schema. Use ":memory:" for an ephemeral store.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, types.NewError(types.ErrHistoryUnavailable,
			fmt.Sprintf("cannot open history db at %q", path)).WithCause(err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, types.NewError(types.ErrHistoryUnavailable,
			"history schema migration failed").WithCause(err)
	}
	return &Store{db: db, logger: log}, nil
}

// Save appends one record with the current timestamp.
func (s *Store) Save(user, question, answer string) error {
	rec := Record{User: user, Question: question, Answer: answer, CreatedAt: time.Now()}
	if err := s.db.Create(&rec).Error; err != nil {
		return types.NewError(types.ErrHistoryUnavailable, "history append failed").WithCause(err)
	}
	return nil
}

// Recent returns the user's most recent records, newest first.
func (s *Store) Recent(user string, limit int) ([]Record, error) {
	var out []Record
	err := s.db.
		Where("user = ?", user).
		Order("id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, types.NewError(types.ErrHistoryUnavailable, "history query failed").WithCause(err)
	}
	return out, nil
}

// Filtered returns records matching the filter, newest first.
func (s *Store) Filtered(f Filter) ([]Record, error) {
	q := s.db.Model(&Record{})
	if f.User != "" {
		q = q.Where("user = ?", f.User)
	}
	if f.Start != nil {
		q = q.Where("created_at >= ?", dayStart(*f.Start))
	}
	if f.End != nil {
		q = q.Where("created_at < ?", dayStart(*f.End).AddDate(0, 0, 1))
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	var out []Record
	if err := q.Order("id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, types.NewError(types.ErrHistoryUnavailable, "history query failed").WithCause(err)
	}
	return out, nil
}

// Users returns the distinct user identifiers, alphabetically.
func (s *Store) Users() ([]string, error) {
	var out []string
	err := s.db.Model(&Record{}).
		Distinct("user").
		Order("user").
		Pluck("user", &out).Error
	if err != nil {
		return nil, types.NewError(types.ErrHistoryUnavailable, "history query failed").WithCause(err)
	}
	return out, nil
}

// dayStart truncates t to midnight in its own location.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
