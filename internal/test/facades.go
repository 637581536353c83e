package test

import (
	"context"

	"github.com/polkiloo/accounts/internal/domain/model"
)

// AccountFacadeStub provides controllable behaviour for account endpoints.
type AccountFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (*model.Account, error)
	UpdateFn       func(context.Context, int64, *string, *string) error
	DeleteFn       func(context.Context, int64) error
	AuthenticateFn func(context.Context, string, string) error
	AccountFn      func(context.Context, int64) (*model.Account, error)
}

// Register delegates to provided function or returns account with ID 1.
func (s AccountFacadeStub) Register(ctx context.Context, email, password string) (*model.Account, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return &model.Account{ID: 1, Email: email, PasswordHash: "hash:" + password}, nil
}

// Update delegates to provided function or succeeds.
func (s AccountFacadeStub) Update(ctx context.Context, id int64, email, password *string) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, email, password)
	}
	return nil
}

// Delete delegates to provided function or succeeds.
func (s AccountFacadeStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Authenticate delegates to provided function or succeeds.
func (s AccountFacadeStub) Authenticate(ctx context.Context, email, password string) error {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return nil
}

// Account returns account for given identifier.
func (s AccountFacadeStub) Account(ctx context.Context, id int64) (*model.Account, error) {
	if s.AccountFn != nil {
		return s.AccountFn(ctx, id)
	}
	return &model.Account{ID: id, Email: "user@example.com", PasswordHash: "hash:secret"}, nil
}
