package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	domainErrors "github.com/polkiloo/accounts/internal/domain/errors"
	"github.com/polkiloo/accounts/internal/domain/model"
	"github.com/polkiloo/accounts/internal/domain/repository"
	pkgAuth "github.com/polkiloo/accounts/internal/pkg/auth"
)

// timingPassword is hashed once and compared against when the email is
// unknown, so a missing account costs the same as a wrong password.
const timingPassword = "account-does-not-exist"

// AccountUseCase handles account lifecycle and credential checks.
type AccountUseCase struct {
	accounts repository.AccountRepository
	hasher   pkgAuth.PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(accounts repository.AccountRepository, hasher pkgAuth.PasswordHasher) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, hasher: hasher}
}

// Register creates a new account. Uniqueness of the email is left to the
// store, a duplicate surfaces as ErrAlreadyExists.
func (u *AccountUseCase) Register(ctx context.Context, email, password string) (*model.Account, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	if !ValidateEmail(email) {
		return nil, domainErrors.ErrInvalidEmail
	}

	hash, err := u.hash(password)
	if err != nil {
		return nil, err
	}

	acc, err := u.accounts.Create(ctx, email, hash)
	if err != nil {
		return nil, storeError("create account", err)
	}
	return acc, nil
}

// Update replaces the supplied fields of account id. Nil fields are left
// untouched; supplying none is a no-op once the account is known to exist.
func (u *AccountUseCase) Update(ctx context.Context, id int64, email, password *string) error {
	if _, err := u.accounts.GetByID(ctx, id); err != nil {
		return storeError("get account", err)
	}

	var update model.AccountUpdate
	if email != nil {
		normalized := normalizeEmail(*email)
		if !ValidateEmail(normalized) {
			return domainErrors.ErrInvalidEmail
		}
		update.Email = &normalized
	}
	if password != nil {
		if *password == "" {
			return domainErrors.ErrInvalidInput
		}
		hash, err := u.hash(*password)
		if err != nil {
			return err
		}
		update.PasswordHash = &hash
	}

	if update.Empty() {
		return nil
	}

	if err := u.accounts.Update(ctx, id, update); err != nil {
		return storeError("update account", err)
	}
	return nil
}

// Delete permanently removes account id.
func (u *AccountUseCase) Delete(ctx context.Context, id int64) error {
	if err := u.accounts.Delete(ctx, id); err != nil {
		return storeError("delete account", err)
	}
	return nil
}

// Authenticate verifies credentials. Unknown email and wrong password are
// both reported as ErrInvalidCredentials.
func (u *AccountUseCase) Authenticate(ctx context.Context, email, password string) (*model.Account, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidInput
	}

	acc, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			u.burnComparison(password)
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}

	if err := u.hasher.Compare(acc.PasswordHash, password); err != nil {
		return nil, domainErrors.ErrInvalidCredentials
	}

	return acc, nil
}

// Get fetches account by identifier.
func (u *AccountUseCase) Get(ctx context.Context, id int64) (*model.Account, error) {
	acc, err := u.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get account", err)
	}
	return acc, nil
}

func (u *AccountUseCase) hash(password string) (string, error) {
	hash, err := u.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
			return "", domainErrors.ErrInvalidInput
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (u *AccountUseCase) burnComparison(password string) {
	u.dummyOnce.Do(func() {
		if hash, err := u.hasher.Hash(timingPassword); err == nil {
			u.dummyHash = hash
		}
	})
	if u.dummyHash != "" {
		_ = u.hasher.Compare(u.dummyHash, password)
	}
}

// storeError keeps domain sentinels as-is and wraps infrastructure failures.
func storeError(op string, err error) error {
	if errors.Is(err, domainErrors.ErrNotFound) || errors.Is(err, domainErrors.ErrAlreadyExists) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
