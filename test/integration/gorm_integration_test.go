package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-shopassist-be/internal/entity"
	"ai-shopassist-be/internal/model"
	"ai-shopassist-be/internal/repository/implementation"
	"ai-shopassist-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCatalogRepository(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	repo := implementation.NewCatalogRepository(gormDB)
	ctx := context.Background()

	// A category no seed data uses, so reruns stay independent.
	const category = "integration-test"
	t.Cleanup(func() {
		gormDB.Exec("DELETE FROM products WHERE category = ?", category)
	})

	require.NoError(t, gormDB.AutoMigrate(&model.Product{}))

	seed := []*entity.Product{
		{Name: "Integration Laptop A", Brand: "Acme", Category: category, Price: "$499", Specifications: []string{"8GB RAM", "256GB SSD"}},
		{Name: "Integration Laptop B", Brand: "Acme", Category: category, Price: "$899"},
	}
	require.NoError(t, repo.UpsertMany(ctx, seed))

	t.Run("FindByCategory returns seeded rows", func(t *testing.T) {
		products, err := repo.FindByCategory(ctx, category)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("Upsert is idempotent per category and name", func(t *testing.T) {
		seed[0].Price = "$459"
		require.NoError(t, repo.UpsertMany(ctx, seed))

		products, err := repo.FindByCategory(ctx, category)
		require.NoError(t, err)
		assert.Len(t, products, 2)
		for _, p := range products {
			if p.Name == "Integration Laptop A" {
				assert.Equal(t, "$459", p.Price)
			}
		}
	})

	t.Run("ListCategories includes the test category", func(t *testing.T) {
		categories, err := repo.ListCategories(ctx)
		require.NoError(t, err)
		assert.Contains(t, categories, category)
	})

	t.Run("Unknown category is empty, not an error", func(t *testing.T) {
		products, err := repo.FindByCategory(ctx, "no-such-category")
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}
