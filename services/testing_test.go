package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/msetrainings/nutrition/config"
)

// newTestDB opens a private in-memory SQLite database for one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fixture struct {
	ctx     context.Context
	db      *gorm.DB
	dates   *LogDateService
	foods   *FoodService
	entries *EntryService
	days    *DayService
}

func newFixture(t *testing.T) *fixture {
	db := newTestDB(t)
	log := testLogger()
	f := &fixture{
		ctx:     context.Background(),
		db:      db,
		dates:   NewLogDateService(db, log),
		foods:   NewFoodService(db, log),
		entries: NewEntryService(db, log),
	}
	f.days = NewDayService(f.dates, f.entries)
	return f
}
