package identity

import "context"

type AppUserRepository interface {
	Save(ctx context.Context, user *AppUser) error
	Update(ctx context.Context, user *AppUser) error
	GetByUsername(ctx context.Context, username string) (*AppUser, error)
}
