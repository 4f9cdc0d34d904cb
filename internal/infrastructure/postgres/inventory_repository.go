package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

var (
	_ repository.InventoryRepository = (*InventoryRepo)(nil)
	_ repository.PurchaseRepository  = (*PurchaseRepo)(nil)
)

// InventoryRepo persists stocked supplies.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the adapter.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const itemColumns = `id, sku, name, COALESCE(category, ''), stock_qty, unit_cost, unit_price,
	low_stock_threshold, COALESCE(expiry_date, ''), COALESCE(supplier, ''), is_drug, created_at`

// Create persists an item. The unique index on sku maps to domain.ErrDuplicate.
func (r *InventoryRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, sku, name, category, stock_qty, unit_cost, unit_price,
		                             low_stock_threshold, expiry_date, supplier, is_drug, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.SKU, it.Name, nullIfEmpty(it.Category), it.StockQty, it.UnitCost, it.UnitPrice,
		it.LowStockThreshold, nullIfEmpty(it.ExpiryDate), nullIfEmpty(it.Supplier), it.IsDrug, it.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sku %s", domain.ErrDuplicate, it.SKU)
		}
		return storageErr("insert inventory item", err)
	}
	return nil
}

// GetByID returns one item, or (nil, nil) when absent.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.scanOne(r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id))
}

// GetBySKU returns the item with the given SKU, or (nil, nil).
func (r *InventoryRepo) GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	return r.scanOne(r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE sku = $1`, sku))
}

// List returns all items ordered by name.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+itemColumns+` FROM inventory_items ORDER BY name`)
	if err != nil {
		return nil, storageErr("list inventory items", err)
	}
	defer rows.Close()

	var out []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.SKU, &it.Name, &it.Category, &it.StockQty, &it.UnitCost, &it.UnitPrice,
			&it.LowStockThreshold, &it.ExpiryDate, &it.Supplier, &it.IsDrug, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// DecrementStock subtracts qty in one conditional statement. Zero rows
// affected means the row was short (or missing), so no stock moved.
func (r *InventoryRepo) DecrementStock(ctx context.Context, id string, qty int) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE inventory_items SET stock_qty = stock_qty - $2 WHERE id = $1 AND stock_qty >= $2`,
		id, qty,
	)
	if err != nil {
		return storageErr("decrement stock", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *InventoryRepo) scanOne(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.SKU, &it.Name, &it.Category, &it.StockQty, &it.UnitCost, &it.UnitPrice,
		&it.LowStockThreshold, &it.ExpiryDate, &it.Supplier, &it.IsDrug, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get inventory item", err)
	}
	return &it, nil
}

// PurchaseRepo persists purchases. Lines are stored as a JSONB snapshot;
// nothing queries individual purchase lines.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository builds the adapter.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persists a purchase with its line snapshot.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	lines, err := json.Marshal(p.Items)
	if err != nil {
		return fmt.Errorf("marshal purchase lines: %w", err)
	}
	query := `
		INSERT INTO purchases (id, patient_id, patient_name, items, total_cost, purchase_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(ctx, query,
		p.ID, nullIfEmpty(p.PatientID), nullIfEmpty(p.PatientName), lines, p.TotalCost, p.PurchaseDate, p.Status,
	)
	if err != nil {
		return storageErr("insert purchase", err)
	}
	return nil
}

// List returns recent purchases, newest first.
func (r *PurchaseRepo) List(ctx context.Context, limit int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, COALESCE(patient_id, ''), COALESCE(patient_name, ''), items, total_cost, purchase_date, status
		FROM purchases ORDER BY id DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, storageErr("list purchases", err)
	}
	defer rows.Close()

	var out []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		var lines []byte
		if err := rows.Scan(&p.ID, &p.PatientID, &p.PatientName, &lines, &p.TotalCost, &p.PurchaseDate, &p.Status); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		if err := json.Unmarshal(lines, &p.Items); err != nil {
			return nil, fmt.Errorf("unmarshal purchase lines: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
