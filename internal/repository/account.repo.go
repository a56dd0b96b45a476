package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"customer-service/internal/domain"
	"customer-service/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Tx is the transaction handle the service layer holds while grouping writes.
// Satisfied by pgx.Tx.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every statement
// can run inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserCustomerRepository owns persistence for the users and customers tables.
// It carries no business logic and never retries.
type UserCustomerRepository struct {
	db *pgxpool.Pool
}

func NewUserCustomerRepository(db *pgxpool.Pool) *UserCustomerRepository {
	return &UserCustomerRepository{db: db}
}

func (r *UserCustomerRepository) Begin(ctx context.Context) (Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return tx, nil
}

func (r *UserCustomerRepository) q(tx Tx) querier {
	if pgxTx, ok := tx.(pgx.Tx); ok && pgxTx != nil {
		return pgxTx
	}
	return r.db
}

// CreateUser persists a new User inside the given transaction (or directly on
// the pool when tx is nil). Duplicate email surfaces as the store's unique
// violation; a write that produces no row is reported as WriteFailed.
func (r *UserCustomerRepository) CreateUser(ctx context.Context, tx Tx, user *domain.User) (*domain.User, error) {
	userID, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	const query = `
		INSERT INTO users (id, email, password_hash, role, status, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, password_hash, role, status, is_deleted, created_at, updated_at
	`

	saved := new(domain.User)
	var id int64
	err = r.q(tx).QueryRow(ctx, query,
		userID, user.Email, user.PasswordHash, user.Role, user.Status, user.IsDeleted,
	).Scan(
		&id, &saved.Email, &saved.PasswordHash, &saved.Role, &saved.Status,
		&saved.IsDeleted, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.Wrap(xerrors.KindWriteFailed, "User creation failed", err)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	saved.ID = strconv.FormatInt(id, 10)

	return saved, nil
}

// CreateCustomer persists a new Customer referencing an existing User.
func (r *UserCustomerRepository) CreateCustomer(ctx context.Context, tx Tx, customer *domain.Customer) (*domain.Customer, error) {
	customerID, err := strconv.ParseInt(customer.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID: %w", err)
	}
	userID, err := strconv.ParseInt(customer.UserID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in customer: %w", err)
	}

	const query = `
		INSERT INTO customers (id, user_id, name, email, phone, address, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, name, email, phone, address, avatar_url, created_at, updated_at
	`

	saved := new(domain.Customer)
	var id, savedUserID int64
	err = r.q(tx).QueryRow(ctx, query,
		customerID, userID, customer.Name, customer.Email,
		customer.Phone, customer.Address, customer.AvatarURL,
	).Scan(
		&id, &savedUserID, &saved.Name, &saved.Email,
		&saved.Phone, &saved.Address, &saved.AvatarURL,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.Wrap(xerrors.KindWriteFailed, "Customer creation failed", err)
		}
		return nil, fmt.Errorf("failed to insert customer: %w", err)
	}
	saved.ID = strconv.FormatInt(id, 10)
	saved.UserID = strconv.FormatInt(savedUserID, 10)

	return saved, nil
}

// GetAll returns every customer joined with the owning user's account fields.
func (r *UserCustomerRepository) GetAll(ctx context.Context, excludeDeleted bool) ([]*domain.CustomerAccount, error) {
	query := `
		SELECT c.id, c.user_id, c.name, c.email, c.phone, c.address, c.avatar_url,
		       c.created_at, c.updated_at, u.role, u.status, u.is_deleted
		FROM customers c
		JOIN users u ON u.id = c.user_id
	`
	if excludeDeleted {
		query += ` WHERE u.is_deleted = false`
	}
	query += ` ORDER BY c.created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.CustomerAccount
	for rows.Next() {
		acc, err := scanCustomerAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return accounts, nil
}

// GetByEmail looks a customer up by email. Absence is not an error: the
// caller decides whether a missing row is NotFound.
func (r *UserCustomerRepository) GetByEmail(ctx context.Context, email string, excludeDeleted bool) (*domain.CustomerAccount, error) {
	query := `
		SELECT c.id, c.user_id, c.name, c.email, c.phone, c.address, c.avatar_url,
		       c.created_at, c.updated_at, u.role, u.status, u.is_deleted
		FROM customers c
		JOIN users u ON u.id = c.user_id
		WHERE c.email = $1
	`
	if excludeDeleted {
		query += ` AND u.is_deleted = false`
	}
	query += ` LIMIT 1`

	acc, err := scanCustomerAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

// SoftDeleteUser flips the soft-delete flag and returns the updated user, or
// nil when no user matches the email.
func (r *UserCustomerRepository) SoftDeleteUser(ctx context.Context, email string) (*domain.User, error) {
	const query = `
		UPDATE users
		SET is_deleted = true, updated_at = NOW()
		WHERE email = $1 AND is_deleted = false
		RETURNING id, email, password_hash, role, status, is_deleted, created_at, updated_at
	`

	user := new(domain.User)
	var id int64
	err := r.db.QueryRow(ctx, query, email).Scan(
		&id, &user.Email, &user.PasswordHash, &user.Role, &user.Status,
		&user.IsDeleted, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to soft-delete user %s: %w", email, err)
	}
	user.ID = strconv.FormatInt(id, 10)

	return user, nil
}

// GetCredentials fetches the auth fields for a user by email. Absence returns
// nil without error, same as GetByEmail.
func (r *UserCustomerRepository) GetCredentials(ctx context.Context, email string) (*domain.Credentials, error) {
	const query = `
		SELECT email, password_hash, role, status, is_deleted
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	creds := new(domain.Credentials)
	err := r.db.QueryRow(ctx, query, email).Scan(
		&creds.Email, &creds.PasswordHash, &creds.Role, &creds.Status, &creds.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return creds, nil
}

func scanCustomerAccount(row pgx.Row) (*domain.CustomerAccount, error) {
	acc := new(domain.CustomerAccount)
	var id, userID int64
	err := row.Scan(
		&id, &userID, &acc.Name, &acc.Email, &acc.Phone, &acc.Address, &acc.AvatarURL,
		&acc.CreatedAt, &acc.UpdatedAt, &acc.Role, &acc.Status, &acc.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	acc.ID = strconv.FormatInt(id, 10)
	acc.UserID = strconv.FormatInt(userID, 10)

	return acc, nil
}
