package postgres

import (
	"context"
	"testing"

	"printshop/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	consumeStockQuery = `UPDATE "products" SET .*stock_quantity - .*WHERE .*id = .* AND stock_quantity >= .*RETURNING`
	findProductQuery  = `SELECT \* FROM "products" WHERE .*id = `
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestProductRepository_ConsumeStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(consumeStockQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "stock_quantity", "low_stock_threshold"}).
			AddRow(1, "Poster", 2, 3))

	product, err := repo.ConsumeStock(context.Background(), 1, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(1), product.ID)
	assert.Equal(t, 2, product.StockQuantity)
	assert.Equal(t, 3, product.LowStockThreshold)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ConsumeStock_NoRowMatched(t *testing.T) {
	tests := []struct {
		name          string
		productRows   *sqlmock.Rows
		wantErr       error
		wantAvailable int
	}{
		{
			name:          "not enough stock",
			productRows:   sqlmock.NewRows([]string{"id", "name", "stock_quantity"}).AddRow(1, "Poster", 2),
			wantErr:       repository.ErrInsufficientStock,
			wantAvailable: 2,
		},
		{
			name:        "product missing",
			productRows: sqlmock.NewRows([]string{"id", "name", "stock_quantity"}),
			wantErr:     repository.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewProductRepository(db)

			mock.ExpectQuery(consumeStockQuery).
				WillReturnRows(sqlmock.NewRows([]string{"id", "name", "stock_quantity"}))
			mock.ExpectQuery(findProductQuery).
				WillReturnRows(tt.productRows)

			product, err := repo.ConsumeStock(context.Background(), 1, 3)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, product)

			if tt.wantAvailable > 0 {
				var shortfall *repository.InsufficientStockError
				require.ErrorAs(t, err, &shortfall)
				assert.Equal(t, tt.wantAvailable, shortfall.Available)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
