package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/logger"
)

// UseCase manages stocked supplies and patient purchases.
type UseCase struct {
	itemRepo     repository.InventoryRepository
	purchaseRepo repository.PurchaseRepository
	tx           repository.TxRunner
	log          *logger.Logger
}

// NewUseCase builds the use case.
func NewUseCase(
	itemRepo repository.InventoryRepository,
	purchaseRepo repository.PurchaseRepository,
	tx repository.TxRunner,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		itemRepo:     itemRepo,
		purchaseRepo: purchaseRepo,
		tx:           tx,
		log:          log,
	}
}

// AddItem registers a new supply. SKU must be unique.
func (uc *UseCase) AddItem(ctx context.Context, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockQty < 0 || in.UnitPrice.IsNegative() || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	existing, err := uc.itemRepo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, fmt.Errorf("check sku: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: sku %s", domain.ErrDuplicate, in.SKU)
	}

	item := &entity.InventoryItem{
		ID:                uuid.Must(uuid.NewV7()).String(),
		SKU:               in.SKU,
		Name:              in.Name,
		Category:          in.Category,
		StockQty:          in.StockQty,
		UnitCost:          in.UnitCost,
		UnitPrice:         in.UnitPrice,
		LowStockThreshold: in.LowStockThreshold,
		ExpiryDate:        in.ExpiryDate,
		Supplier:          in.Supplier,
		IsDrug:            in.IsDrug,
		CreatedAt:         time.Now().UTC(),
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("persist item: %w", err)
	}

	uc.log.Info().Str("item_id", item.ID).Str("sku", item.SKU).Msg("inventory item added")
	return toItemResponse(item), nil
}

// ListItems returns the full stock list.
func (uc *UseCase) ListItems(ctx context.Context) ([]*dto.InventoryItemResponse, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// ListLowStock returns items at or below their threshold.
func (uc *UseCase) ListLowStock(ctx context.Context) ([]*dto.InventoryItemResponse, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*dto.InventoryItemResponse
	for _, it := range items {
		if it.StockQty <= it.LowStockThreshold {
			out = append(out, toItemResponse(it))
		}
	}
	return out, nil
}

// RecordPurchase sells inventory to a patient. Stock decrements and the
// purchase record commit atomically: any short row aborts the whole sale
// with ErrInsufficientStock and no stock moves.
func (uc *UseCase) RecordPurchase(ctx context.Context, in dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Items {
		if line.ItemID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	purchase := &entity.Purchase{
		ID:           uuid.Must(uuid.NewV7()).String(),
		PatientID:    in.PatientID,
		PatientName:  in.PatientName,
		PurchaseDate: time.Now().UTC(),
		Status:       entity.PurchaseStatusCompleted,
	}

	err := uc.tx.WithinTx(ctx, func(repos repository.TxRepos) error {
		total := decimal.Zero
		for _, line := range in.Items {
			item, err := repos.Inventory.GetByID(ctx, line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return fmt.Errorf("%w: item %s", domain.ErrNotFound, line.ItemID)
			}
			if err := repos.Inventory.DecrementStock(ctx, line.ItemID, line.Quantity); err != nil {
				return err
			}
			lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			purchase.Items = append(purchase.Items, entity.PurchaseItem{
				ItemID:     item.ID,
				ItemName:   item.Name,
				SKU:        item.SKU,
				Quantity:   line.Quantity,
				UnitPrice:  item.UnitPrice,
				TotalPrice: lineTotal,
			})
			total = total.Add(lineTotal)
		}
		purchase.TotalCost = total
		return repos.Purchases.Create(ctx, purchase)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("purchase_id", purchase.ID).
		Str("total", purchase.TotalCost.StringFixed(2)).
		Int("lines", len(purchase.Items)).
		Msg("purchase recorded")

	return toPurchaseResponse(purchase), nil
}

// ListPurchases returns recent purchases, newest first.
func (uc *UseCase) ListPurchases(ctx context.Context, limit int) ([]*dto.PurchaseResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	purchases, err := uc.purchaseRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

func toItemResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:                it.ID,
		SKU:               it.SKU,
		Name:              it.Name,
		Category:          it.Category,
		StockQty:          it.StockQty,
		UnitCost:          it.UnitCost,
		UnitPrice:         it.UnitPrice,
		LowStockThreshold: it.LowStockThreshold,
		ExpiryDate:        it.ExpiryDate,
		Supplier:          it.Supplier,
		IsDrug:            it.IsDrug,
		CreatedAt:         it.CreatedAt,
	}
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:           p.ID,
		PatientID:    p.PatientID,
		PatientName:  p.PatientName,
		TotalCost:    p.TotalCost,
		PurchaseDate: p.PurchaseDate,
		Status:       p.Status,
	}
}
