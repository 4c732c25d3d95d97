package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GildedRose_Go/internal/database/postgres"
	"github.com/osse101/GildedRose_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Inventory repository.Inventory
	Catalog   repository.Catalog
}

// InitializeRepositories creates all repository implementations.
// One postgres repository backs both interfaces.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	repo := postgres.NewInventoryRepository(dbPool)
	return &Repositories{
		Inventory: repo,
		Catalog:   repo,
	}
}
