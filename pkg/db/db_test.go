package db

import (
	"errors"
	"testing"
	"time"

	"github.com/smallbiznis/smartdairy/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDialectByType(t *testing.T) {
	for _, dbType := range []string{"sqlite", "postgres", "mysql"} {
		d, err := Dialect(config.Config{DBType: dbType, DBPath: "dairy.db"})
		require.NoError(t, err, dbType)
		assert.NotNil(t, d)
	}

	_, err := Dialect(config.Config{DBType: "oracle"})
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:dairy.db?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("dairy.db"))
	assert.Equal(t, "file:smartdairy.db?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN(" "))
	assert.Equal(t, "file::memory:", SQLiteDSN("file::memory:"))
}

func TestPoolConfigPinsSQLiteToOneConnection(t *testing.T) {
	pool := poolConfig(config.Config{DBType: "sqlite", DBMaxOpenConn: 8, DBMaxIdleConn: 4, DBConnMaxLifetime: 300})
	assert.Equal(t, 1, pool.MaxOpenConn)
	assert.Equal(t, 1, pool.MaxIdleConn)
	assert.Equal(t, 5*time.Minute, pool.ConnMaxLifetime)

	pool = poolConfig(config.Config{DBType: "postgres", DBMaxOpenConn: 8, DBMaxIdleConn: 4})
	assert.Equal(t, 8, pool.MaxOpenConn)
	assert.Equal(t, 4, pool.MaxIdleConn)
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, IsDuplicateKeyErr(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKeyErr(errors.New("UNIQUE constraint failed: customers.name")))
	assert.True(t, IsDuplicateKeyErr(errors.New("Error 1062 (23000): Duplicate entry")))
	assert.False(t, IsDuplicateKeyErr(nil))
	assert.False(t, IsDuplicateKeyErr(errors.New("boom")))

	assert.True(t, IsForeignKeyErr(gorm.ErrForeignKeyViolated))
	assert.True(t, IsForeignKeyErr(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, IsForeignKeyErr(errors.New("UNIQUE constraint failed")))
}
