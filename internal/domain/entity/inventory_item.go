package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked supply (medicine or consumable). SKU is unique.
type InventoryItem struct {
	ID                string
	SKU               string
	Name              string
	Category          string
	StockQty          int
	UnitCost          decimal.Decimal
	UnitPrice         decimal.Decimal
	LowStockThreshold int
	ExpiryDate        string
	Supplier          string
	IsDrug            bool
	CreatedAt         time.Time
}
