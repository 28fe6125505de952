package usecase

import (
	"context"
	"mini-networth/internal/domain"
)

// AccountRepository defines the interface for fetching account snapshots.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go AccountRepository
type AccountRepository interface {
	GetAccounts(ctx context.Context, paths []string) ([]domain.Account, error)
}
