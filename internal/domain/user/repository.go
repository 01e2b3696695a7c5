package user

import "context"

// Filter narrows admin user listings.
type Filter struct {
	Role     string
	Verified *bool
	Search   string
	Page     int
	PageSize int
}

type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByVerificationTokenHash(ctx context.Context, tokenHash string) (*User, error)
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*User, error)
	GetByLoginLinkTokenHash(ctx context.Context, tokenHash string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByCampusID(ctx context.Context, campusID string) (bool, error)
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountVerified(ctx context.Context) (int64, error)
}
