package wishlist

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
)

// ProductSource validates products before they are saved. Implemented by the
// catalog repository.
type ProductSource interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

// Service defines wishlist operations. Toggle semantics: saving a saved
// product removes it.
type Service interface {
	Toggle(ctx context.Context, userID, productID string) (saved bool, err error)
	List(ctx context.Context, userID string) ([]models.Product, error)
}

type service struct {
	repo     Repository
	products ProductSource
}

// NewService wires wishlist dependencies.
func NewService(repo Repository, products ProductSource) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "wishlist repository required")
	}
	if products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "product source required")
	}
	return &service{repo: repo, products: products}, nil
}

// Toggle flips a product's saved state and reports whether it is now saved.
func (s *service) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	if strings.TrimSpace(productID) == "" {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	existing, err := s.repo.Find(ctx, userID, productID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up wishlist entry")
	}
	if existing != nil {
		if err := s.repo.Delete(ctx, userID, productID); err != nil {
			return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove wishlist entry")
		}
		return false, nil
	}

	item := &models.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save wishlist entry")
	}
	return true, nil
}

// List resolves saved entries to their products, skipping entries whose
// product an admin has since deleted.
func (s *service) List(ctx context.Context, userID string) ([]models.Product, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist entries")
	}

	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist product")
		}
		products = append(products, *product)
	}
	return products, nil
}
