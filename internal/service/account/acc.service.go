package account

import (
	"context"
	"fmt"

	"customer-service/internal/domain"
	"customer-service/internal/repository"
	"customer-service/pkg/id"
	"customer-service/pkg/utils"
	"customer-service/pkg/xerrors"

	"go.uber.org/zap"
)

// Store is the persistence contract the service orchestrates. Implemented by
// repository.UserCustomerRepository.
type Store interface {
	Begin(ctx context.Context) (repository.Tx, error)
	CreateUser(ctx context.Context, tx repository.Tx, user *domain.User) (*domain.User, error)
	CreateCustomer(ctx context.Context, tx repository.Tx, customer *domain.Customer) (*domain.Customer, error)
	GetAll(ctx context.Context, excludeDeleted bool) ([]*domain.CustomerAccount, error)
	GetByEmail(ctx context.Context, email string, excludeDeleted bool) (*domain.CustomerAccount, error)
	SoftDeleteUser(ctx context.Context, email string) (*domain.User, error)
	GetCredentials(ctx context.Context, email string) (*domain.Credentials, error)
}

// Publisher emits account lifecycle events after a successful commit.
type Publisher interface {
	AccountCreated(userID, email string) error
	AccountDeleted(userID, email string) error
}

// AccountService owns the transactional create flow and the record-to-DTO
// mapping. Both transport handlers sit directly on top of it; neither carries
// any business logic of its own.
type AccountService struct {
	store          Store
	sf             *id.Snowflake
	publisher      Publisher
	logger         *zap.Logger
	excludeDeleted bool
}

func NewAccountService(store Store, sf *id.Snowflake, publisher Publisher, logger *zap.Logger, excludeDeleted bool) *AccountService {
	return &AccountService{
		store:          store,
		sf:             sf,
		publisher:      publisher,
		logger:         logger,
		excludeDeleted: excludeDeleted,
	}
}

// Create validates the request, then creates the User and its Customer
// profile as one transaction. The user write strictly precedes the customer
// write; any failure between Begin and Commit rolls both back. Concurrent
// creates for the same email race on the store's unique constraints, so
// exactly one of them can win.
func (s *AccountService) Create(ctx context.Context, req *domain.CreateAccountRequest) (*domain.AccountResponse, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.KindServiceFailure, "User-Customer creation failed", err)
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.KindServiceFailure, "User-Customer creation failed", err)
	}
	// Rollback after a successful commit is a no-op, so this covers every
	// exit path without special-casing.
	defer tx.Rollback(ctx)

	user := &domain.User{
		ID:           s.sf.Generate(),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		Status:       domain.StatusInProgress,
		IsDeleted:    false,
	}
	createdUser, err := s.store.CreateUser(ctx, tx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	customer := &domain.Customer{
		ID:        s.sf.Generate(),
		UserID:    createdUser.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     optional(req.Phone),
		Address:   optional(req.Address),
		AvatarURL: optional(req.AvatarURL),
	}
	createdCustomer, err := s.store.CreateCustomer(ctx, tx, customer)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, xerrors.Wrap(xerrors.KindServiceFailure, "User-Customer creation failed", err)
	}

	// Best effort: a lost event never fails the request.
	if err := s.publisher.AccountCreated(createdUser.ID, createdUser.Email); err != nil {
		s.logger.Warn("failed to publish account created event",
			zap.String("user_id", createdUser.ID), zap.Error(err))
	}

	return &domain.AccountResponse{
		Name:      createdCustomer.Name,
		Email:     createdCustomer.Email,
		Role:      createdUser.Role,
		Status:    createdUser.Status,
		Phone:     deref(createdCustomer.Phone),
		Address:   deref(createdCustomer.Address),
		AvatarURL: deref(createdCustomer.AvatarURL),
		IsDeleted: createdUser.IsDeleted,
	}, nil
}

// Get lists every customer account. No customers is an empty list, never an
// error.
func (s *AccountService) Get(ctx context.Context) ([]*domain.AccountResponse, error) {
	accounts, err := s.store.GetAll(ctx, s.excludeDeleted)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	responses := make([]*domain.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		responses = append(responses, toResponse(acc))
	}
	return responses, nil
}

// GetByEmail returns the customer account for an email or NotFound.
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*domain.AccountResponse, error) {
	acc, err := s.store.GetByEmail(ctx, email, s.excludeDeleted)
	if err != nil {
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	if acc == nil {
		return nil, xerrors.NotFound("Customer not found")
	}
	return toResponse(acc), nil
}

// Delete soft-deletes the user behind an email. The customer profile is
// retained; only the user's flag flips.
func (s *AccountService) Delete(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.store.SoftDeleteUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	if user == nil {
		return nil, xerrors.NotFound("User not found")
	}

	if err := s.publisher.AccountDeleted(user.ID, user.Email); err != nil {
		s.logger.Warn("failed to publish account deleted event",
			zap.String("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}

// Credentials returns the auth lookup record for an email. RPC surface only.
func (s *AccountService) Credentials(ctx context.Context, email string) (*domain.Credentials, error) {
	creds, err := s.store.GetCredentials(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get credentials: %w", err)
	}
	if creds == nil {
		return nil, xerrors.NotFound("User not found")
	}
	return creds, nil
}

func toResponse(acc *domain.CustomerAccount) *domain.AccountResponse {
	return &domain.AccountResponse{
		Name:      acc.Name,
		Email:     acc.Email,
		Role:      acc.Role,
		Status:    acc.Status,
		Phone:     deref(acc.Phone),
		Address:   deref(acc.Address),
		AvatarURL: deref(acc.AvatarURL),
		IsDeleted: acc.IsDeleted,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
