package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/Foodgram_Go/internal/database"
	"github.com/osse101/Foodgram_Go/internal/domain"
)

// setupIntegrationDB starts a disposable PostgreSQL container, applies the
// embedded migrations and returns a pool. The test is skipped in short mode
// or when Docker is unavailable.
func setupIntegrationDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()

	if err != nil {
		t.Skipf("Skipping integration test: failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		t.Skip("Skipping integration test: postgres container unavailable")
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      connStr,
		MaxConns:        10,
		MaxConnIdleTime: time.Minute,
		MaxConnLifetime: 5 * time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.Migrate(ctx, pool, database.MigrateUp); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	return pool
}

// fixture holds rows created by seedFixture
type fixture struct {
	Author      domain.User
	Reader      domain.User
	Breakfast   domain.Tag
	Dinner      domain.Tag
	Flour       domain.Ingredient
	Milk        domain.Ingredient
	Egg         domain.Ingredient
	FlourInKilo domain.Ingredient
}

// seedFixture inserts two users, two tags and four ingredients
func seedFixture(t *testing.T, pool *pgxpool.Pool) fixture {
	t.Helper()
	ctx := context.Background()

	users := NewUserRepository(pool)
	catalog := NewCatalogRepository(pool)

	f := fixture{
		Author: domain.User{Email: "author@example.com", Username: "author", FirstName: "Ann", LastName: "Author"},
		Reader: domain.User{Email: "reader@example.com", Username: "reader", FirstName: "Rick", LastName: "Reader"},
	}
	for _, u := range []*domain.User{&f.Author, &f.Reader} {
		if _, err := users.UpsertUser(ctx, u); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}

	if _, err := catalog.UpsertTags(ctx, []domain.Tag{
		{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		{Name: "Dinner", Color: "#49B64E", Slug: "dinner"},
	}); err != nil {
		t.Fatalf("failed to seed tags: %v", err)
	}
	if _, err := catalog.InsertIngredients(ctx, []domain.Ingredient{
		{Name: "flour", MeasurementUnit: "g"},
		{Name: "milk", MeasurementUnit: "ml"},
		{Name: "egg", MeasurementUnit: "pcs"},
		{Name: "flour", MeasurementUnit: "kg"},
	}); err != nil {
		t.Fatalf("failed to seed ingredients: %v", err)
	}

	tags, err := catalog.ListTags(ctx)
	if err != nil || len(tags) != 2 {
		t.Fatalf("unexpected tags after seed: %v %v", tags, err)
	}
	f.Breakfast, f.Dinner = tags[0], tags[1]

	ingredients, err := catalog.ListIngredients(ctx, "")
	if err != nil || len(ingredients) != 4 {
		t.Fatalf("unexpected ingredients after seed: %v %v", ingredients, err)
	}
	for _, ing := range ingredients {
		switch {
		case ing.Name == "flour" && ing.MeasurementUnit == "g":
			f.Flour = ing
		case ing.Name == "flour" && ing.MeasurementUnit == "kg":
			f.FlourInKilo = ing
		case ing.Name == "milk":
			f.Milk = ing
		case ing.Name == "egg":
			f.Egg = ing
		}
	}
	return f
}

// insertRecipe writes a recipe with tags and links in one transaction
func insertRecipe(t *testing.T, repo *RecipeRepository, authorID int64, name string, tagIDs []int64, links []domain.IngredientAmount) int64 {
	t.Helper()
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx failed: %v", err)
	}
	defer tx.Rollback(ctx)

	id, err := tx.InsertRecipe(ctx, &domain.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       "recipes/images/" + name + ".png",
		Text:        "Mix and cook.",
		CookingTime: 15,
	})
	if err != nil {
		t.Fatalf("InsertRecipe failed: %v", err)
	}
	if err := tx.AttachTags(ctx, id, tagIDs); err != nil {
		t.Fatalf("AttachTags failed: %v", err)
	}
	if err := tx.InsertIngredientLinks(ctx, id, links); err != nil {
		t.Fatalf("InsertIngredientLinks failed: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	return id
}
