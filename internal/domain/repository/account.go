package repository

import (
	"context"

	"github.com/polkiloo/accounts/internal/domain/model"
)

// AccountRepository describes persistence operations for accounts.
//
// Implementations must enforce email uniqueness themselves and report a
// violation as errors.ErrAlreadyExists; a missing row is errors.ErrNotFound.
type AccountRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	Update(ctx context.Context, id int64, update model.AccountUpdate) error
	Delete(ctx context.Context, id int64) error
}
