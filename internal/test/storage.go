package test

import (
	"context"

	"github.com/polkiloo/accounts/internal/domain/repository"
)

// StorageStub is an opened store backed by an in-memory repository.
type StorageStub struct {
	Repo        repository.AccountRepository
	HealthErr   error
	CloseErr    error
	CloseCalled bool
}

// Accounts returns the configured repository or a fresh in-memory stub.
func (s *StorageStub) Accounts() repository.AccountRepository {
	if s.Repo == nil {
		s.Repo = NewAccountRepositoryStub()
	}
	return s.Repo
}

// HealthCheck returns HealthErr.
func (s *StorageStub) HealthCheck(context.Context) error {
	return s.HealthErr
}

// Close records the call and returns CloseErr.
func (s *StorageStub) Close() error {
	s.CloseCalled = true
	return s.CloseErr
}
