package products

import (
	"context"
	"fmt"

	"github.com/ragavibes/storefront-backend/pkg/db/models"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
)

// Service exposes catalog browsing operations.
type Service interface {
	Search(ctx context.Context, query string) ([]ProductDTO, error)
}

type catalogRepository interface {
	List(ctx context.Context) ([]models.Product, error)
}

type service struct {
	catalog catalogRepository
}

// NewService constructs a catalog service with the provided repository.
func NewService(catalog catalogRepository) (Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	return &service{catalog: catalog}, nil
}

// Search lists the catalog, narrowed by the optional substring query.
func (s *service) Search(ctx context.Context, query string) ([]ProductDTO, error) {
	rows, err := s.catalog.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list catalog")
	}
	return FromModels(Filter(rows, query)), nil
}
