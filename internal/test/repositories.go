package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/accounts/internal/domain/errors"
	"github.com/polkiloo/accounts/internal/domain/model"
)

// AccountRepositoryStub stores accounts in-memory for tests. Email uniqueness
// is enforced the way a unique index would.
type AccountRepositoryStub struct {
	mu sync.Mutex

	ByEmail map[string]*model.Account
	ByID    map[int64]*model.Account
	Next    int64

	// Err is returned by every method when set.
	Err error
	// UpdateErr and DeleteErr only affect the respective method.
	UpdateErr error
	DeleteErr error

	Updates []model.AccountUpdate
}

// NewAccountRepositoryStub constructs stub repository with initialized maps.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		ByEmail: make(map[string]*model.Account),
		ByID:    make(map[int64]*model.Account),
		Next:    1,
	}
}

func (s *AccountRepositoryStub) init() {
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.Account)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Account)
	}
	if s.Next == 0 {
		s.Next = 1
	}
}

// Create registers account unless the email is taken or stub has explicit error.
func (s *AccountRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.init()
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	now := time.Now().UTC()
	acc := &model.Account{ID: s.Next, Email: email, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	s.Next++
	s.ByEmail[email] = acc
	s.ByID[acc.ID] = acc
	out := *acc
	return &out, nil
}

// GetByEmail fetches account by email or returns not found.
func (s *AccountRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if acc, ok := s.ByEmail[email]; ok {
		out := *acc
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches account by identifier or returns not found.
func (s *AccountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if acc, ok := s.ByID[id]; ok {
		out := *acc
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update applies non-nil fields, rejecting emails owned by another account.
func (s *AccountRepositoryStub) Update(ctx context.Context, id int64, update model.AccountUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.Updates = append(s.Updates, update)
	acc, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if update.Email != nil && *update.Email != acc.Email {
		if _, taken := s.ByEmail[*update.Email]; taken {
			return domainErrors.ErrAlreadyExists
		}
		delete(s.ByEmail, acc.Email)
		acc.Email = *update.Email
		s.ByEmail[acc.Email] = acc
	}
	if update.PasswordHash != nil {
		acc.PasswordHash = *update.PasswordHash
	}
	acc.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete removes account or returns not found.
func (s *AccountRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	acc, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	delete(s.ByEmail, acc.Email)
	return nil
}

// Count returns number of stored accounts.
func (s *AccountRepositoryStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ByID)
}
