package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	dbtypes "github.com/imakhan79/Grocery-Mart/pkg/db/types"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
)

// AuditRecorder captures admin-side mutations for the audit trail.
type AuditRecorder interface {
	Record(ctx context.Context, adminID, action, target string) error
}

// Service defines catalog browse and admin management operations.
type Service interface {
	List(ctx context.Context, params ListParams) ([]models.Product, error)
	Get(ctx context.Context, productID string) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, adminID string, input CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, adminID, productID string, input UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, adminID, productID string) error
}

type service struct {
	repo  Repository
	audit AuditRecorder
}

// CreateProductInput carries the fields an admin supplies for a new listing.
type CreateProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category" validate:"required"`
	SubCategory string          `json:"subCategory"`
	Brand       string          `json:"brand"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock" validate:"min=0"`
	Tags        []string        `json:"tags"`
	Dietary     []string        `json:"dietary"`
}

// UpdateProductInput patches an existing listing; nil fields stay untouched.
type UpdateProductInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Unit        *string          `json:"unit"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock"`
	Image       *string          `json:"image"`
}

// NewService wires catalog dependencies.
func NewService(repo Repository, audit AuditRecorder) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog repository required")
	}
	if audit == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "audit recorder required")
	}
	return &service{repo: repo, audit: audit}, nil
}

func (s *service) List(ctx context.Context, params ListParams) ([]models.Product, error) {
	products, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return products, nil
}

func (s *service) Get(ctx context.Context, productID string) (*models.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func (s *service) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return categories, nil
}

func (s *service) Create(ctx context.Context, adminID string, input CreateProductInput) (*models.Product, error) {
	if adminID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name required")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	product := &models.Product{
		ID:          fmt.Sprintf("p-%s", uuid.NewString()[:8]),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Unit:        input.Unit,
		Category:    input.Category,
		SubCategory: input.SubCategory,
		Brand:       input.Brand,
		Image:       input.Image,
		Stock:       input.Stock,
		Tags:        dbtypes.StringList(input.Tags),
		Dietary:     dbtypes.StringList(input.Dietary),
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}

	if err := s.audit.Record(ctx, adminID, "product.create", product.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record audit entry")
	}
	return product, nil
}

func (s *service) Update(ctx context.Context, adminID, productID string, input UpdateProductInput) (*models.Product, error) {
	if adminID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}

	product, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock must not be negative")
		}
		product.Stock = *input.Stock
	}
	if input.Image != nil {
		product.Image = *input.Image
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}

	if err := s.audit.Record(ctx, adminID, "product.update", product.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record audit entry")
	}
	return product, nil
}

func (s *service) Delete(ctx context.Context, adminID, productID string) error {
	if adminID == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	if strings.TrimSpace(productID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	deleted, err := s.repo.Delete(ctx, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	if err := s.audit.Record(ctx, adminID, "product.delete", productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record audit entry")
	}
	return nil
}
