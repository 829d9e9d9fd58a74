package tickets

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	"github.com/imakhan79/Grocery-Mart/pkg/enums"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
)

// Service defines support ticket operations.
type Service interface {
	Open(ctx context.Context, userID string, input OpenTicketInput) (*models.SupportTicket, error)
	Get(ctx context.Context, userID, ticketID string) (*models.SupportTicket, error)
	ListMine(ctx context.Context, userID string) ([]models.SupportTicket, error)
	ListAll(ctx context.Context) ([]models.SupportTicket, error)
	Reply(ctx context.Context, userID, ticketID string, role enums.TicketMessageRole, text string) (*models.SupportTicket, error)
}

// OpenTicketInput carries one new ticket request. The message becomes the
// first entry of the conversation thread.
type OpenTicketInput struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type service struct {
	repo Repository
}

// NewService wires ticket dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "tickets repository required")
	}
	return &service{repo: repo}, nil
}

// Open files a new ticket. Every ticket starts OPEN at MEDIUM priority with
// the customer's message seeding the thread.
func (s *service) Open(ctx context.Context, userID string, input OpenTicketInput) (*models.SupportTicket, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ticket subject required")
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ticket message required")
	}

	now := time.Now().UTC()
	ticket := &models.SupportTicket{
		ID:        newTicketID(),
		UserID:    userID,
		Subject:   input.Subject,
		Status:    enums.TicketStatusOpen,
		Priority:  enums.TicketPriorityMedium,
		CreatedAt: now,
		Messages: []models.TicketMessage{{
			ID:        uuid.New(),
			Role:      enums.TicketMessageRoleUser,
			Text:      input.Message,
			CreatedAt: now,
		}},
	}
	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create ticket")
	}
	return ticket, nil
}

func (s *service) Get(ctx context.Context, userID, ticketID string) (*models.SupportTicket, error) {
	ticket, err := s.load(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "ticket not found")
	}
	return ticket, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]models.SupportTicket, error) {
	tickets, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list tickets")
	}
	return tickets, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.SupportTicket, error) {
	tickets, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list tickets")
	}
	return tickets, nil
}

// Reply appends a message to a ticket thread. Customers may only write to
// their own tickets; agents may write to any.
func (s *service) Reply(ctx context.Context, userID, ticketID string, role enums.TicketMessageRole, text string) (*models.SupportTicket, error) {
	if strings.TrimSpace(text) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message text required")
	}

	ticket, err := s.load(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if role == enums.TicketMessageRoleUser && ticket.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "ticket not found")
	}

	message := &models.TicketMessage{
		ID:        uuid.New(),
		TicketID:  ticket.ID,
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddMessage(ctx, message); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append ticket message")
	}

	ticket.Messages = append(ticket.Messages, *message)
	return ticket, nil
}

func (s *service) load(ctx context.Context, ticketID string) (*models.SupportTicket, error) {
	if strings.TrimSpace(ticketID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ticket id required")
	}
	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "ticket not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load ticket")
	}
	return ticket, nil
}

func newTicketID() string {
	return fmt.Sprintf("TKT-%03d", rand.Intn(1000))
}
