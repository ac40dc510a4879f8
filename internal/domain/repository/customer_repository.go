package repository

import (
	"context"

	"printshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCustomerNotFound is returned when the customer record no longer exists.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository reads storefront customer records.
type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
}
