package session

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/auth"
	"github.com/imakhan79/Grocery-Mart/pkg/config"
	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	"github.com/imakhan79/Grocery-Mart/pkg/enums"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
)

// FallbackUserID is returned when a login asks for a role no seeded user
// holds. The demo always signs somebody in.
const FallbackUserID = "u2"

// UserSource looks up mock identities. Implemented by the users repository.
type UserSource interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FirstByRole(ctx context.Context, role enums.UserRole) (*models.User, error)
}

// CartClearer drains the cart on logout. Implemented by the cart service.
type CartClearer interface {
	Clear(ctx context.Context, userID string) error
}

// LoginResult bundles the signed-in user with their bearer token.
type LoginResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Service implements the demo's role-picker authentication.
type Service interface {
	Login(ctx context.Context, role enums.UserRole) (*LoginResult, error)
	Logout(ctx context.Context, userID string) error
	Me(ctx context.Context, userID string) (*models.User, error)
}

type service struct {
	users  UserSource
	carts  CartClearer
	jwtCfg config.JWTConfig
}

// NewService wires session dependencies.
func NewService(users UserSource, carts CartClearer, jwtCfg config.JWTConfig) (Service, error) {
	if users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "user source required")
	}
	if carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cart clearer required")
	}
	return &service{users: users, carts: carts, jwtCfg: jwtCfg}, nil
}

// Login signs in as the first seeded user holding the requested role,
// falling back to the default customer when no such user exists.
func (s *service) Login(ctx context.Context, role enums.UserRole) (*LoginResult, error) {
	var user *models.User
	var err error

	if role.IsValid() {
		user, err = s.users.FirstByRole(ctx, role)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up user by role")
		}
	}
	if user == nil {
		user, err = s.users.FindByID(ctx, FallbackUserID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load fallback user")
		}
	}

	token, err := auth.MintAccessToken(s.jwtCfg, time.Now(), auth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mint access token")
	}

	return &LoginResult{User: user, Token: token}, nil
}

// Logout drains the user's cart. Orders, notifications, wishlist, and the
// loyalty balance all survive the session.
func (s *service) Logout(ctx context.Context, userID string) error {
	return s.carts.Clear(ctx, userID)
}

func (s *service) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return user, nil
}
