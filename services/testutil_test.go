package services

import (
	"fmt"
	"testing"
	"time"

	"momslove/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory sqlite database. The shared cache keeps
// every pooled connection on the same database; the name keeps suites apart.
func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatal("failed to open test database:", err)
	}

	if err := config.Migrate(db); err != nil {
		t.Fatal("failed to migrate test database:", err)
	}

	return db
}

// fixedClock pins Now for deterministic timestamps.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
