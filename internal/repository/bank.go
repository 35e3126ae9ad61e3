package repository

import (
	"context"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Bank defines persistence for bank snapshots
type Bank interface {
	// GetOwnedQuantities sums quantities per item across every row in scope
	GetOwnedQuantities(ctx context.Context, scope domain.BankScope) (map[int]int64, error)
	// GetBankEntries returns the rows stored for exactly this scope
	GetBankEntries(ctx context.Context, scope domain.BankScope) ([]domain.BankEntry, error)
	// ApplyBankDiff writes a diff atomically
	ApplyBankDiff(ctx context.Context, scope domain.BankScope, diff domain.BankDiff) error
}
