package tickets

import (
	"context"

	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
)

// Repository exposes persistence helpers for support tickets.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, ticket *models.SupportTicket) error
	FindByID(ctx context.Context, id string) (*models.SupportTicket, error)
	ListByUser(ctx context.Context, userID string) ([]models.SupportTicket, error)
	ListAll(ctx context.Context) ([]models.SupportTicket, error)
	AddMessage(ctx context.Context, message *models.TicketMessage) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a tickets repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, ticket *models.SupportTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *repositoryImpl) FindByID(ctx context.Context, id string) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repositoryImpl) ListByUser(ctx context.Context, userID string) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := r.db.WithContext(ctx).
		Preload("Messages").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *repositoryImpl) ListAll(ctx context.Context) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := r.db.WithContext(ctx).
		Preload("Messages").
		Order("created_at DESC, id DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *repositoryImpl) AddMessage(ctx context.Context, message *models.TicketMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}
