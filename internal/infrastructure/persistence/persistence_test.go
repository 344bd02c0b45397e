package persistence

import (
	"testing"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/ordering"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// TranslateError matches the production configuration so unique-index
// violations surface as gorm.ErrDuplicatedKey here too.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&catalog.Company{},
		&catalog.Category{},
		&catalog.Product{},
		&catalog.Price{},
		&ordering.Customer{},
		&ordering.Order{},
		&ordering.OrderItem{},
	)
	require.NoError(t, err)

	return db
}
