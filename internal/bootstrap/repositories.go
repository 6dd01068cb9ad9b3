package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/database/postgres"
	"github.com/osse101/Foodgram_Go/internal/eventlog"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Catalog    repository.Catalog
	Recipe     repository.Recipe
	Membership repository.Membership
	Shopping   repository.Shopping
	User       repository.User
	Follow     repository.Follow
	EventLog   eventlog.Repository
}

// InitializeRepositories creates all repository implementations. The
// membership and user repositories each serve two interfaces.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	memberships := postgres.NewMembershipRepository(dbPool)
	users := postgres.NewUserRepository(dbPool)

	return &Repositories{
		Catalog:    postgres.NewCatalogRepository(dbPool),
		Recipe:     postgres.NewRecipeRepository(dbPool),
		Membership: memberships,
		Shopping:   memberships,
		User:       users,
		Follow:     users,
		EventLog:   postgres.NewEventLogRepository(dbPool),
	}
}
