// Package service applies the business rules of each resource on top of its
// repository and turns missing ids into user-facing not-found errors.
package service

import (
	"errors"
	"fmt"

	"github.com/msomdec/anime-service/internal/domain"
)

// notFound converts a repository ErrNotFound into the resource's
// *domain.NotFoundError and wraps any other failure with op.
func notFound(err error, resource, op string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFoundError(resource)
	}
	return fmt.Errorf("%s: %w", op, err)
}
