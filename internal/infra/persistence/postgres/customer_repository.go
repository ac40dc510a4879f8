package postgres

import (
	"context"

	"printshop/internal/domain/entity"
	"printshop/internal/domain/repository"
	"printshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindByID returns ErrCustomerNotFound for removed customers too.
func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return &entity.Customer{
		ID:    customerM.ID,
		Name:  customerM.Name,
		Email: customerM.Email,
		Phone: customerM.Phone,
	}, nil
}
