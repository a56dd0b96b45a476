package domain

import "time"

// Customer is the profile record. UserID is the back-reference to the owning
// User and never changes after creation. Email is a denormalized copy of the
// User's email and carries its own unique constraint.
type Customer struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Phone     *string
	Address   *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerAccount is a Customer joined with the owning User's account fields,
// as returned by the read queries.
type CustomerAccount struct {
	Customer
	Role      Role
	Status    Status
	IsDeleted bool
}

// Credentials is the auth-service lookup shape. Only the gRPC surface may
// return it; the password hash must never cross the HTTP boundary.
type Credentials struct {
	Email        string
	PasswordHash string
	Role         Role
	Status       Status
	IsDeleted    bool
}
