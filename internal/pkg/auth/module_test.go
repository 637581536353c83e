package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/accounts/internal/config"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher(hasherParams{Config: &config.Config{BcryptCost: bcrypt.MinCost}})
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != bcrypt.MinCost {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}
}

func TestNewPasswordHasherDefaultsCost(t *testing.T) {
	hasher := newPasswordHasher(hasherParams{Config: &config.Config{}})
	if hasher.(*BcryptHasher).cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost")
	}
}
