package app

import (
	"context"

	"github.com/polkiloo/accounts/internal/domain/model"
	"github.com/polkiloo/accounts/internal/usecase"
)

// AccountFacade exposes account operations to the transport layer.
type AccountFacade struct {
	accounts *usecase.AccountUseCase
}

func NewAccountFacade(accounts *usecase.AccountUseCase) *AccountFacade {
	return &AccountFacade{accounts: accounts}
}

func (f *AccountFacade) Register(ctx context.Context, email, password string) (*model.Account, error) {
	return f.accounts.Register(ctx, email, password)
}

func (f *AccountFacade) Update(ctx context.Context, id int64, email, password *string) error {
	return f.accounts.Update(ctx, id, email, password)
}

func (f *AccountFacade) Delete(ctx context.Context, id int64) error {
	return f.accounts.Delete(ctx, id)
}

// Authenticate verifies credentials without issuing any session state.
func (f *AccountFacade) Authenticate(ctx context.Context, email, password string) error {
	_, err := f.accounts.Authenticate(ctx, email, password)
	return err
}

func (f *AccountFacade) Account(ctx context.Context, id int64) (*model.Account, error) {
	return f.accounts.Get(ctx, id)
}
