package repositories_test

import (
	"context"
	"testing"

	"staffdir/internal/database"
	"staffdir/internal/models"
	"staffdir/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory SQLite database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }

func TestUserRepositories(t *testing.T) {
	impls := map[string]func(t *testing.T) repositories.UserRepository{
		"gorm": func(t *testing.T) repositories.UserRepository {
			return repositories.NewGORMUserRepository(newTestDB(t))
		},
		"memory": func(*testing.T) repositories.UserRepository {
			return repositories.NewMockUserRepository()
		},
	}

	for name, newRepo := range impls {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			alice := &models.User{Name: "Alice", Email: "a@x.com", Password: "hash", Gender: models.GenderFemale}
			require.NoError(t, repo.Create(ctx, alice))
			assert.NotEmpty(t, alice.ID)

			// Same email again violates the unique index.
			dup := &models.User{Name: "Other", Email: "a@x.com", Password: "hash"}
			err := repo.Create(ctx, dup)
			assert.ErrorIs(t, err, repositories.ErrDuplicateKey)

			// Email lookups are case-sensitive.
			_, err = repo.GetByEmail(ctx, "A@x.com")
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			found, err := repo.GetByEmail(ctx, "a@x.com")
			require.NoError(t, err)
			assert.Equal(t, alice.ID, found.ID)

			updated, err := repo.Update(ctx, alice.ID, models.UserUpdate{Name: strPtr("Alicia")})
			require.NoError(t, err)
			assert.Equal(t, "Alicia", updated.Name)
			assert.Equal(t, "a@x.com", updated.Email)

			_, err = repo.Update(ctx, "missing", models.UserUpdate{Name: strPtr("x")})
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			bob := &models.User{Name: "Bob", Email: "b@x.com", Password: "hash"}
			require.NoError(t, repo.Create(ctx, bob))
			_, err = repo.Update(ctx, bob.ID, models.UserUpdate{Email: strPtr("a@x.com")})
			assert.ErrorIs(t, err, repositories.ErrDuplicateKey)

			all, err := repo.GetAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 2)

			require.NoError(t, repo.Delete(ctx, alice.ID))
			assert.ErrorIs(t, repo.Delete(ctx, alice.ID), repositories.ErrNotFound)
			_, err = repo.GetByID(ctx, alice.ID)
			assert.ErrorIs(t, err, repositories.ErrNotFound)
		})
	}
}

func TestEmployeeRepositories(t *testing.T) {
	impls := map[string]func(t *testing.T) repositories.EmployeeRepository{
		"gorm": func(t *testing.T) repositories.EmployeeRepository {
			return repositories.NewGORMEmployeeRepository(newTestDB(t))
		},
		"memory": func(*testing.T) repositories.EmployeeRepository {
			return repositories.NewMockEmployeeRepository()
		},
	}

	for name, newRepo := range impls {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			bob := &models.Employee{
				Name: "Bob", Email: "b@x.com", Gender: models.GenderMale, Age: 30,
				Role: models.RoleDeveloper, PhoneNumber: "9876543210", JoiningDate: "01/01/2024", AdminID: "admin-a",
			}
			require.NoError(t, repo.Create(ctx, bob))
			carol := &models.Employee{
				Name: "Carol", Email: "c@x.com", Gender: models.GenderFemale, Age: 28,
				Role: models.RoleTester, AdminID: "admin-b",
			}
			require.NoError(t, repo.Create(ctx, carol))

			// Employee emails are unique across every admin.
			err := repo.Create(ctx, &models.Employee{Name: "Dup", Email: "b@x.com", Gender: models.GenderOther, Role: models.RoleDesigner, AdminID: "admin-b"})
			assert.ErrorIs(t, err, repositories.ErrDuplicateKey)

			mine, err := repo.GetByAdminID(ctx, "admin-a")
			require.NoError(t, err)
			require.Len(t, mine, 1)
			assert.Equal(t, bob.ID, mine[0].ID)

			none, err := repo.GetByAdminID(ctx, "nobody")
			require.NoError(t, err)
			assert.NotNil(t, none)
			assert.Empty(t, none)

			age := 31
			updated, err := repo.Update(ctx, bob.ID, models.EmployeeUpdate{Age: &age})
			require.NoError(t, err)
			assert.Equal(t, 31, updated.Age)
			assert.Equal(t, "admin-a", updated.AdminID)

			require.NoError(t, repo.Delete(ctx, bob.ID))
			_, err = repo.GetByID(ctx, bob.ID)
			assert.ErrorIs(t, err, repositories.ErrNotFound)
			assert.ErrorIs(t, repo.Delete(ctx, bob.ID), repositories.ErrNotFound)
		})
	}
}
