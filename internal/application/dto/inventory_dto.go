package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest adds a supply to stock. SKU must be unique.
type CreateInventoryItemRequest struct {
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	StockQty          int             `json:"stock_qty"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	ExpiryDate        string          `json:"expiry_date"`
	Supplier          string          `json:"supplier"`
	IsDrug            bool            `json:"is_drug"`
}

// InventoryItemResponse mirrors a stocked item.
type InventoryItemResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Category          string          `json:"category,omitempty"`
	StockQty          int             `json:"stock_qty"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	ExpiryDate        string          `json:"expiry_date,omitempty"`
	Supplier          string          `json:"supplier,omitempty"`
	IsDrug            bool            `json:"is_drug"`
	CreatedAt         time.Time       `json:"created_at"`
}

// PurchaseItemRequest is one inventory line on a purchase.
type PurchaseItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// RecordPurchaseRequest records a patient buying inventory items.
type RecordPurchaseRequest struct {
	PatientID   string                `json:"patient_id"`
	PatientName string                `json:"patient_name"`
	Items       []PurchaseItemRequest `json:"items"`
}

// PurchaseResponse mirrors a recorded purchase.
type PurchaseResponse struct {
	ID           string          `json:"id"`
	PatientID    string          `json:"patient_id"`
	PatientName  string          `json:"patient_name"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	PurchaseDate time.Time       `json:"purchase_date"`
	Status       string          `json:"status"`
}
