package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatusCompleted is the only status a recorded purchase takes.
const PurchaseStatusCompleted = "COMPLETED"

// Purchase records inventory items sold to a patient at the billing desk.
// Item fields are snapshots; later inventory edits do not affect them.
type Purchase struct {
	ID           string
	PatientID    string
	PatientName  string
	Items        []PurchaseItem
	TotalCost    decimal.Decimal
	PurchaseDate time.Time
	Status       string
}

// PurchaseItem is one inventory line inside a purchase.
type PurchaseItem struct {
	ItemID     string
	ItemName   string
	SKU        string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
