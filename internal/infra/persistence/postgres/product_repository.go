package postgres

import (
	"context"

	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByIDs resolves a batch of products in one query.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves one product from the primary.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ConsumeStock decrements stock_quantity by qty in a single conditional UPDATE.
// The row lock taken by the UPDATE serialises concurrent consumers, and the
// stock_quantity predicate is re-checked against the committed value, so two
// of them can never both pass the availability check.
func (repo *productRepository) ConsumeStock(ctx context.Context, id int64, qty int) (*entity.Product, error) {
	var productM model.ProductModel

	result := repo.db.WithContext(ctx).
		Model(&productM).
		Clauses(clause.Returning{}).
		Where("id = ? AND stock_quantity >= ?", id, qty).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume stock")
	}

	// No row matched: either the product is gone or it holds fewer than qty.
	// The transaction is still usable here, so the shortfall is read back once.
	if result.RowsAffected == 0 {
		product, err := repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}

		return nil, &repository.InsufficientStockError{Available: product.StockQuantity}
	}

	return toProductDomain(&productM), nil
}

// AddStock increments stock_quantity by qty.
func (repo *productRepository) AddStock(ctx context.Context, id int64, qty int) (*entity.Product, error) {
	var productM model.ProductModel

	result := repo.db.WithContext(ctx).
		Model(&productM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", qty))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add stock")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(&productM), nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:                data.ID,
		Name:              data.Name,
		ImageURL:          data.ImageURL,
		Price:             data.Price,
		StockQuantity:     data.StockQuantity,
		LowStockThreshold: data.LowStockThreshold,
		UpdatedAt:         data.UpdatedAt,
	}
}
