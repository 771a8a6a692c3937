package user

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error

	// ListNotifiable returns users with email notifications enabled. When
	// cadence is non-empty the stored frequency preference is part of the
	// query; the every-minute tick passes "" and filters in code instead.
	ListNotifiable(ctx context.Context, cadence Cadence) ([]User, error)

	// AppendSentJobKeys appends keys to the user's sent ledger with an
	// atomic append-if-absent, so a concurrent settings write cannot drop
	// ledger entries.
	AppendSentJobKeys(ctx context.Context, id string, keys []string) error
}
