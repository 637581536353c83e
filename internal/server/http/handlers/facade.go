package handlers

import (
	"context"

	"github.com/polkiloo/accounts/internal/domain/model"
)

// AccountFacade describes account capabilities required by handlers.
type AccountFacade interface {
	Register(ctx context.Context, email, password string) (*model.Account, error)
	Update(ctx context.Context, id int64, email, password *string) error
	Delete(ctx context.Context, id int64) error
	Authenticate(ctx context.Context, email, password string) error
	Account(ctx context.Context, id int64) (*model.Account, error)
}
