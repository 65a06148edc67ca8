package httpserver

import (
	"github.com/dddshop/backend/domain"
	"github.com/dddshop/backend/domain/checkout"
	"github.com/dddshop/backend/domain/customer"
	"github.com/dddshop/backend/domain/product"
	"github.com/dddshop/backend/pkg/apperror"
	"github.com/pkg/errors"
)

var (
	notFoundErrors = []error{
		customer.ErrCustomerNotFound,
		product.ErrProductNotFound,
		checkout.ErrOrderNotFound,
	}

	conflictErrors = []error{
		customer.ErrCustomerExists,
		product.ErrProductExists,
		checkout.ErrOrderExists,
	}

	ruleErrors = []error{
		customer.ErrIDRequired,
		customer.ErrNameRequired,
		customer.ErrAddressRequired,
		customer.ErrNegativePoints,
		customer.ErrStreetRequired,
		customer.ErrNumberRequired,
		customer.ErrZipRequired,
		customer.ErrCityRequired,
		product.ErrIDRequired,
		product.ErrNameRequired,
		product.ErrInvalidPrice,
		checkout.ErrIDRequired,
		checkout.ErrCustomerIDRequired,
		checkout.ErrItemsRequired,
		checkout.ErrItemIDRequired,
		checkout.ErrProductIDRequired,
		checkout.ErrInvalidPrice,
		checkout.ErrInvalidQuantity,
	}
)

// toAppError maps domain and service errors onto HTTP error codes.
func toAppError(err error) apperror.Error {
	switch {
	case errors.Is(err, domain.ErrEventHandling):
		return apperror.ErrEventDispatch(err)
	case isAny(err, notFoundErrors):
		return apperror.ErrEntityNotFound(err)
	case isAny(err, conflictErrors):
		return apperror.ErrConflict(err)
	case isAny(err, ruleErrors):
		return apperror.ErrDomainRule(err)
	}

	return apperror.ErrInternalServer(err)
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
