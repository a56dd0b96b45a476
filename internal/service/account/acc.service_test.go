package account

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"customer-service/internal/domain"
	"customer-service/internal/repository"
	"customer-service/pkg/id"
	"customer-service/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- mock implementations ----

type mockTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (m *mockTx) Commit(ctx context.Context) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.committed = true
	return nil
}

func (m *mockTx) Rollback(ctx context.Context) error {
	if !m.committed {
		m.rolledBack = true
	}
	return nil
}

type mockStore struct {
	tx *mockTx

	beginCalls          int
	createUserFn        func(user *domain.User) (*domain.User, error)
	createCustomerFn    func(customer *domain.Customer) (*domain.Customer, error)
	createUserCalls     int
	createCustomerCalls int

	getAllFn         func(excludeDeleted bool) ([]*domain.CustomerAccount, error)
	getByEmailFn     func(email string, excludeDeleted bool) (*domain.CustomerAccount, error)
	softDeleteFn     func(email string) (*domain.User, error)
	getCredentialsFn func(email string) (*domain.Credentials, error)
}

func (m *mockStore) Begin(ctx context.Context) (repository.Tx, error) {
	m.beginCalls++
	if m.tx == nil {
		m.tx = &mockTx{}
	}
	return m.tx, nil
}

func (m *mockStore) CreateUser(ctx context.Context, tx repository.Tx, user *domain.User) (*domain.User, error) {
	m.createUserCalls++
	if m.createUserFn != nil {
		return m.createUserFn(user)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockStore) CreateCustomer(ctx context.Context, tx repository.Tx, customer *domain.Customer) (*domain.Customer, error) {
	m.createCustomerCalls++
	if m.createCustomerFn != nil {
		return m.createCustomerFn(customer)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockStore) GetAll(ctx context.Context, excludeDeleted bool) ([]*domain.CustomerAccount, error) {
	if m.getAllFn != nil {
		return m.getAllFn(excludeDeleted)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockStore) GetByEmail(ctx context.Context, email string, excludeDeleted bool) (*domain.CustomerAccount, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(email, excludeDeleted)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockStore) SoftDeleteUser(ctx context.Context, email string) (*domain.User, error) {
	if m.softDeleteFn != nil {
		return m.softDeleteFn(email)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockStore) GetCredentials(ctx context.Context, email string) (*domain.Credentials, error) {
	if m.getCredentialsFn != nil {
		return m.getCredentialsFn(email)
	}
	return nil, fmt.Errorf("not configured")
}

type mockPublisher struct {
	created []string
	deleted []string
	err     error
}

func (m *mockPublisher) AccountCreated(userID, email string) error {
	m.created = append(m.created, email)
	return m.err
}

func (m *mockPublisher) AccountDeleted(userID, email string) error {
	m.deleted = append(m.deleted, email)
	return m.err
}

// ---- helpers ----

func newTestService(t *testing.T, store *mockStore, pub *mockPublisher) *AccountService {
	t.Helper()
	sf, err := id.NewSnowflake(1)
	require.NoError(t, err)
	if pub == nil {
		pub = &mockPublisher{}
	}
	return NewAccountService(store, sf, pub, zap.NewNop(), false)
}

func echoUser(user *domain.User) (*domain.User, error) {
	clone := *user
	return &clone, nil
}

func echoCustomer(customer *domain.Customer) (*domain.Customer, error) {
	clone := *customer
	return &clone, nil
}

func validRequest() *domain.CreateAccountRequest {
	return &domain.CreateAccountRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}
}

// ---- tests ----

func TestCreateSuccess(t *testing.T) {
	store := &mockStore{createUserFn: echoUser, createCustomerFn: echoCustomer}
	pub := &mockPublisher{}
	svc := newTestService(t, store, pub)

	req := validRequest()
	req.Phone = "+254700000001"
	req.Address = "Nairobi"

	got, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, domain.RoleCustomer, got.Role)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.Equal(t, "+254700000001", got.Phone)
	assert.Equal(t, "Nairobi", got.Address)
	assert.Empty(t, got.AvatarURL)
	assert.False(t, got.IsDeleted)

	assert.True(t, store.tx.committed, "transaction should be committed")
	assert.False(t, store.tx.rolledBack, "committed transaction should not roll back")
	assert.Equal(t, []string{"alice@example.com"}, pub.created)
}

func TestCreateHashesPassword(t *testing.T) {
	var savedUser *domain.User
	store := &mockStore{
		createUserFn: func(user *domain.User) (*domain.User, error) {
			savedUser = user
			return echoUser(user)
		},
		createCustomerFn: echoCustomer,
	}
	svc := newTestService(t, store, nil)

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, savedUser)
	assert.NotEmpty(t, savedUser.PasswordHash)
	assert.NotEqual(t, "secret123", savedUser.PasswordHash, "plaintext password must never be stored")
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.CreateAccountRequest)
		path    string
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(r *domain.CreateAccountRequest) { r.Name = "" },
			path:    "name",
			message: "Name is required",
		},
		{
			name:    "missing email",
			mutate:  func(r *domain.CreateAccountRequest) { r.Email = "  " },
			path:    "email",
			message: "Email is required",
		},
		{
			name:    "malformed email",
			mutate:  func(r *domain.CreateAccountRequest) { r.Email = "not-an-email" },
			path:    "email",
			message: "Invalid email type",
		},
		{
			name:    "missing password",
			mutate:  func(r *domain.CreateAccountRequest) { r.Password = "" },
			path:    "password",
			message: "Password is required",
		},
		{
			name:    "short password",
			mutate:  func(r *domain.CreateAccountRequest) { r.Password = "abc" },
			path:    "password",
			message: "Password must be at least 6 characters",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{}
			svc := newTestService(t, store, nil)

			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)

			var appErr *xerrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, xerrors.KindValidationFailed, appErr.Kind)
			require.Len(t, appErr.Sources, 1)
			assert.Equal(t, tt.path, appErr.Sources[0].Path)
			assert.Equal(t, tt.message, appErr.Sources[0].Message)
			assert.Equal(t, tt.message, appErr.Message, "overall message comes from the first source")

			assert.Zero(t, store.beginCalls, "invalid request must never reach the store")
			assert.Zero(t, store.createUserCalls)
		})
	}
}

func TestCreateReportsAllViolations(t *testing.T) {
	svc := newTestService(t, &mockStore{}, nil)

	_, err := svc.Create(context.Background(), &domain.CreateAccountRequest{})
	require.Error(t, err)

	var appErr *xerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Len(t, appErr.Sources, 3, "name, email and password are all missing")
}

func TestCreateUserWriteFailureRollsBack(t *testing.T) {
	store := &mockStore{
		createUserFn: func(*domain.User) (*domain.User, error) {
			return nil, errors.New("boom")
		},
	}
	pub := &mockPublisher{}
	svc := newTestService(t, store, pub)

	_, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)

	assert.True(t, store.tx.rolledBack)
	assert.Zero(t, store.createCustomerCalls, "customer write must not run after the user write failed")
	assert.Empty(t, pub.created, "no event on a failed create")
}

func TestCreateCustomerWriteFailureRollsBack(t *testing.T) {
	store := &mockStore{
		createUserFn: echoUser,
		createCustomerFn: func(*domain.Customer) (*domain.Customer, error) {
			return nil, errors.New("boom")
		},
	}
	svc := newTestService(t, store, nil)

	_, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)

	assert.True(t, store.tx.rolledBack, "user write must not survive a failed customer write")
	assert.False(t, store.tx.committed)
}

func TestCreateCommitFailure(t *testing.T) {
	store := &mockStore{
		tx:               &mockTx{commitErr: errors.New("deadlock")},
		createUserFn:     echoUser,
		createCustomerFn: echoCustomer,
	}
	svc := newTestService(t, store, nil)

	_, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)

	var appErr *xerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, xerrors.KindServiceFailure, appErr.Kind)
	assert.Equal(t, "User-Customer creation failed", appErr.Message)
}

func TestCreatePublishFailureDoesNotFailRequest(t *testing.T) {
	store := &mockStore{createUserFn: echoUser, createCustomerFn: echoCustomer}
	pub := &mockPublisher{err: errors.New("broker down")}
	svc := newTestService(t, store, pub)

	got, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err, "a lost event never fails the request")
	assert.NotNil(t, got)
}

func TestCreateUserLinkage(t *testing.T) {
	var userID string
	store := &mockStore{
		createUserFn: func(user *domain.User) (*domain.User, error) {
			userID = user.ID
			return echoUser(user)
		},
		createCustomerFn: func(customer *domain.Customer) (*domain.Customer, error) {
			if customer.UserID != userID {
				return nil, fmt.Errorf("customer references user %q, want %q", customer.UserID, userID)
			}
			return echoCustomer(customer)
		},
	}
	svc := newTestService(t, store, nil)

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, userID)
}

func TestGetEmpty(t *testing.T) {
	store := &mockStore{
		getAllFn: func(bool) ([]*domain.CustomerAccount, error) { return nil, nil },
	}
	svc := newTestService(t, store, nil)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got, "no customers is an empty list, not nil")
	assert.Empty(t, got)
}

func TestGetMapsOptionals(t *testing.T) {
	phone := "+254700000001"
	store := &mockStore{
		getAllFn: func(bool) ([]*domain.CustomerAccount, error) {
			return []*domain.CustomerAccount{
				{
					Customer: domain.Customer{Name: "Alice", Email: "alice@example.com", Phone: &phone},
					Role:     domain.RoleCustomer,
					Status:   domain.StatusInProgress,
				},
			}, nil
		},
	}
	svc := newTestService(t, store, nil)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, phone, got[0].Phone)
	assert.Empty(t, got[0].Address, "absent optional maps to empty string")
}

func TestGetByEmailNotFound(t *testing.T) {
	store := &mockStore{
		getByEmailFn: func(string, bool) (*domain.CustomerAccount, error) { return nil, nil },
	}
	svc := newTestService(t, store, nil)

	_, err := svc.GetByEmail(context.Background(), "ghost@example.com")
	require.Error(t, err)

	var appErr *xerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, xerrors.KindNotFound, appErr.Kind)
	assert.Equal(t, "Customer not found", appErr.Message)
}

func TestDelete(t *testing.T) {
	store := &mockStore{
		softDeleteFn: func(email string) (*domain.User, error) {
			return &domain.User{ID: "42", Email: email, IsDeleted: true}, nil
		},
	}
	pub := &mockPublisher{}
	svc := newTestService(t, store, pub)

	got, err := svc.Delete(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, []string{"alice@example.com"}, pub.deleted)
}

func TestDeleteNotFound(t *testing.T) {
	store := &mockStore{
		softDeleteFn: func(string) (*domain.User, error) { return nil, nil },
	}
	pub := &mockPublisher{}
	svc := newTestService(t, store, pub)

	_, err := svc.Delete(context.Background(), "ghost@example.com")
	require.Error(t, err)

	var appErr *xerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, xerrors.KindNotFound, appErr.Kind)
	assert.Equal(t, "User not found", appErr.Message)
	assert.Empty(t, pub.deleted)
}

func TestCredentials(t *testing.T) {
	store := &mockStore{
		getCredentialsFn: func(email string) (*domain.Credentials, error) {
			return &domain.Credentials{
				Email:        email,
				PasswordHash: "$2a$10$hash",
				Role:         domain.RoleCustomer,
				Status:       domain.StatusInProgress,
			}, nil
		},
	}
	svc := newTestService(t, store, nil)

	got, err := svc.Credentials(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)
}

func TestCredentialsNotFound(t *testing.T) {
	store := &mockStore{
		getCredentialsFn: func(string) (*domain.Credentials, error) { return nil, nil },
	}
	svc := newTestService(t, store, nil)

	_, err := svc.Credentials(context.Background(), "ghost@example.com")
	require.Error(t, err)

	var appErr *xerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, xerrors.KindNotFound, appErr.Kind)
}
