package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDatabaseConfigDSN(t *testing.T) {
	pg := DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p", Name: "oralvis", SSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=oralvis port=5432 sslmode=disable", pg.DSN())

	lite := DatabaseConfig{Driver: "sqlite", Path: "oralvis.db"}
	assert.Equal(t, "oralvis.db", lite.DSN())

	mixedCase := DatabaseConfig{Driver: "SQLite", Path: "oralvis.db"}
	assert.Equal(t, "oralvis.db", mixedCase.DSN())

	upperPG := DatabaseConfig{Driver: "POSTGRES", Host: "db", Port: "5432", User: "u", Password: "p", Name: "oralvis", SSLMode: "disable"}
	assert.Equal(t, pg.DSN(), upperPG.DSN())

	unknown := DatabaseConfig{Driver: "oracle"}
	assert.Empty(t, unknown.DSN())

	assert.NotContains(t, pg.String(), "password=p")
	assert.Contains(t, pg.String(), "[REDACTED]")
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	_, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestInitDatabaseUnreachableSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "scans.db")
	_, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: path, MaxRetries: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 1 attempts")
}

func openMigrated(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestMigrateCreatesTables(t *testing.T) {
	db := openMigrated(t)

	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("scans"))
	assert.True(t, db.Migrator().HasColumn(&models.Scan{}, "patientName"))
	assert.True(t, db.Migrator().HasColumn(&models.Scan{}, "uploadDate"))
	assert.NoError(t, Ping(context.Background(), db))
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openMigrated(t)
	assert.NoError(t, Migrate(db))
}

func TestStoreEnforcesUserConstraints(t *testing.T) {
	db := openMigrated(t)

	require.NoError(t, db.Create(&models.User{Email: "a@x.com", Password: "h", Role: models.RoleDentist}).Error)

	err := db.Create(&models.User{Email: "a@x.com", Password: "h", Role: models.RoleDentist}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	err = db.Create(&models.User{Email: "b@x.com", Password: "h", Role: "Admin"}).Error
	assert.Error(t, err, "role outside the enum must be rejected by the store")
}

func TestCloseReleasesPool(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, Close(db))
	assert.Error(t, Ping(context.Background(), db))
}

func TestInitDatabaseDriverCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.db")
	db, err := InitDatabase(DatabaseConfig{Driver: "SQLite", Path: path, MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&models.User{Email: "a@x.com", Password: "h", Role: models.RoleDentist}).Error)
	require.NoError(t, Close(db))

	// the named file holds the data, not a throwaway database
	reopened, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: path, MaxRetries: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(reopened) })
	var count int64
	require.NoError(t, reopened.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
