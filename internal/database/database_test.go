package database_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"github.com/pageza/sofra/backend/config"
	"github.com/pageza/sofra/backend/internal/catalog"
	"github.com/pageza/sofra/backend/internal/database"
	"github.com/pageza/sofra/backend/internal/model"
	"github.com/pageza/sofra/backend/internal/testhelpers"
)

func TestSeedDishesSQLite(t *testing.T) {
	db, err := database.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.RunMigrations(db))

	dishes := catalog.Builtin().AllDishes()
	require.NoError(t, database.SeedDishes(db, dishes))
	// Seeding again must update in place, not duplicate
	dishes[0].Name = "Kuru Fasulye (Etli)"
	require.NoError(t, database.SeedDishes(db, dishes))

	var count int64
	require.NoError(t, db.Model(&model.Dish{}).Count(&count).Error)
	assert.Equal(t, int64(len(dishes)), count)

	c, err := catalog.FromDatabase(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, dishes, c.AllDishes())
}

func TestSeedDishesEmpty(t *testing.T) {
	db, err := database.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.RunMigrations(db))
	assert.NoError(t, database.SeedDishes(db, nil))
}

func TestNewRedisClientBadURL(t *testing.T) {
	_, err := database.NewRedisClient(context.Background(), &config.Config{RedisURL: "http://not-redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

func TestPostgresCatalogRoundTrip(t *testing.T) {
	cfg := testhelpers.SetupTestDatabase(t)

	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	// Migrations are idempotent
	require.NoError(t, database.RunMigrations(db))
	require.NoError(t, database.RunMigrations(db))

	dishes := catalog.Builtin().AllDishes()
	require.NoError(t, database.SeedDishes(db, dishes))

	c, err := catalog.Load(context.Background(), cfg, catalog.Dependencies{DB: db})
	require.NoError(t, err)
	assert.Equal(t, dishes, c.AllDishes())

	// The table refuses categories outside the enum
	err = db.Exec("INSERT INTO dishes (id, name, category) VALUES (100, 'Menemen', 'breakfast')").Error
	assert.Error(t, err)
}
