package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	err = db.Exec("CREATE TABLE snapshots (id TEXT PRIMARY KEY, retailer TEXT, product_count INTEGER)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "snapshots")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "text", colMap["id"])
	assert.Equal(t, "text", colMap["retailer"])
	assert.Equal(t, "integer", colMap["product_count"])

	// PRAGMA table_info returns an empty result for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestHasColumn(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)

	err = db.Exec("CREATE TABLE snapshots (id TEXT PRIMARY KEY, label TEXT)").Error
	assert.NoError(t, err)

	ok, err := HasColumn(db, "snapshots", "label")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasColumn(db, "snapshots", "retailer")
	assert.NoError(t, err)
	assert.False(t, ok)
}
