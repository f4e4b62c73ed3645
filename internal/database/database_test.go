package database

import (
	"testing"

	"gamerforum/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 15,
	}

	assert.NoError(t, configurePool(db, cfg))
}

func TestAutoMigrate_AllModels(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db))

	for _, m := range PersistentModels() {
		assert.True(t, db.Migrator().HasTable(m), "expected table for %T", m)
	}
}

func TestGormLogger_LogMode(t *testing.T) {
	l := newGormLogger()
	silenced := l.LogMode(logger.Silent)

	// LogMode must return a copy, leaving the original untouched.
	assert.Equal(t, logger.Warn, l.Config.LogLevel)
	assert.Equal(t, logger.Silent, silenced.(*CustomGormLogger).Config.LogLevel)
}

func TestCustomGormLogger_QueriesFlowThroughDriver(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "RPG"))

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: newGormLogger()})
	require.NoError(t, err)

	type Category struct {
		ID   uint
		Name string
	}
	var categories []Category
	require.NoError(t, db.Find(&categories).Error)
	assert.Len(t, categories, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
