package audit

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
)

const defaultListLimit = 100

// Service records and lists admin-side mutations.
type Service interface {
	Record(ctx context.Context, adminID, action, target string) error
	List(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type service struct {
	repo Repository
}

// NewService wires audit dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "audit repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Record(ctx context.Context, adminID, action, target string) error {
	if strings.TrimSpace(adminID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "admin id required")
	}
	if strings.TrimSpace(action) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "audit action required")
	}

	entry := &models.AuditLog{
		ID:        uuid.New(),
		AdminID:   adminID,
		Action:    action,
		Target:    target,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist audit entry")
	}
	return nil
}

func (s *service) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list audit entries")
	}
	return entries, nil
}
