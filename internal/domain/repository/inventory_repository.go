package repository

import (
	"context"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

// InventoryRepository is the persistence port for stocked supplies.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error)
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	// DecrementStock atomically subtracts qty from stock_qty, failing with
	// domain.ErrInsufficientStock when the row has less than qty on hand.
	// The decrement and the check are a single statement so concurrent
	// purchases never drive stock negative.
	DecrementStock(ctx context.Context, id string, qty int) error
}

// PurchaseRepository persists patient purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	List(ctx context.Context, limit int) ([]*entity.Purchase, error)
}
