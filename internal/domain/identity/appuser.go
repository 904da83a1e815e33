package identity

import (
	"fmt"
	"time"
)

const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleTechnician = "technician"
)

// AppUser is a dispatcher-side login. The stored credential may still be a
// legacy plaintext value; the auth use case migrates it to a bcrypt hash on
// the first successful login.
type AppUser struct {
	id           uint
	username     string
	passwordHash string
	role         string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAppUser(username, passwordHash, role string) (*AppUser, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if role == "" {
		role = RoleDispatcher
	}

	now := time.Now()

	return &AppUser{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAppUser(id uint, username, passwordHash, role string, createdAt, updatedAt time.Time) (*AppUser, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &AppUser{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *AppUser) ID() uint {
	return u.id
}

func (u *AppUser) Username() string {
	return u.username
}

func (u *AppUser) PasswordHash() string {
	return u.passwordHash
}

func (u *AppUser) Role() string {
	return u.role
}

func (u *AppUser) CreatedAt() time.Time {
	return u.createdAt
}

func (u *AppUser) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *AppUser) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPasswordHash rewrites the stored credential, used by the lazy migration.
func (u *AppUser) SetPasswordHash(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}
