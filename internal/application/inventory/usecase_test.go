package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/inventory"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/logger"
)

type mockItemRepo struct {
	items map[string]*entity.InventoryItem
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{items: make(map[string]*entity.InventoryItem)}
}

func (m *mockItemRepo) Create(_ context.Context, it *entity.InventoryItem) error {
	cp := *it
	m.items[it.ID] = &cp
	return nil
}

func (m *mockItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (m *mockItemRepo) GetBySKU(_ context.Context, sku string) (*entity.InventoryItem, error) {
	for _, it := range m.items {
		if it.SKU == sku {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockItemRepo) List(_ context.Context) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockItemRepo) DecrementStock(_ context.Context, id string, qty int) error {
	it, ok := m.items[id]
	if !ok || it.StockQty < qty {
		return domain.ErrInsufficientStock
	}
	it.StockQty -= qty
	return nil
}

type mockPurchaseRepo struct {
	purchases []*entity.Purchase
}

func (m *mockPurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	cp := *p
	m.purchases = append(m.purchases, &cp)
	return nil
}

func (m *mockPurchaseRepo) List(_ context.Context, limit int) ([]*entity.Purchase, error) {
	if len(m.purchases) > limit {
		return m.purchases[:limit], nil
	}
	return m.purchases, nil
}

// mockTxRunner replays item-repo state on failure to imitate a rollback.
type mockTxRunner struct {
	items     *mockItemRepo
	purchases *mockPurchaseRepo
}

func (m *mockTxRunner) WithinTx(_ context.Context, fn func(repos repository.TxRepos) error) error {
	before := make(map[string]entity.InventoryItem, len(m.items.items))
	for id, it := range m.items.items {
		before[id] = *it
	}
	purchasesBefore := len(m.purchases.purchases)

	err := fn(repository.TxRepos{Inventory: m.items, Purchases: m.purchases})
	if err != nil {
		for id := range m.items.items {
			restored := before[id]
			m.items.items[id] = &restored
		}
		m.purchases.purchases = m.purchases.purchases[:purchasesBefore]
	}
	return err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup() (*inventory.UseCase, *mockItemRepo, *mockPurchaseRepo) {
	items := newMockItemRepo()
	purchases := &mockPurchaseRepo{}
	tx := &mockTxRunner{items: items, purchases: purchases}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return inventory.NewUseCase(items, purchases, tx, log), items, purchases
}

func TestAddItem_UniqueSKU(t *testing.T) {
	uc, _, _ := setup()

	_, err := uc.AddItem(context.Background(), dto.CreateInventoryItemRequest{
		SKU: "MED-001", Name: "Paracetamol", StockQty: 100, UnitPrice: dec("2.50"),
	})
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), dto.CreateInventoryItemRequest{
		SKU: "MED-001", Name: "Something else", StockQty: 5, UnitPrice: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.AddItem(context.Background(), dto.CreateInventoryItemRequest{
		SKU: "MED-002", Name: "Ibuprofen", StockQty: -1, UnitPrice: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestRecordPurchase_DecrementsStockAndTotals(t *testing.T) {
	uc, items, purchases := setup()

	created, err := uc.AddItem(context.Background(), dto.CreateInventoryItemRequest{
		SKU: "MED-001", Name: "Paracetamol", StockQty: 10, UnitPrice: dec("2.50"),
	})
	require.NoError(t, err)

	resp, err := uc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		PatientID:   "p-1",
		PatientName: "Asha Rao",
		Items:       []dto.PurchaseItemRequest{{ItemID: created.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalCost.Equal(dec("10")), "4 x 2.50")
	assert.Equal(t, entity.PurchaseStatusCompleted, resp.Status)

	it, _ := items.GetByID(context.Background(), created.ID)
	assert.Equal(t, 6, it.StockQty)
	require.Len(t, purchases.purchases, 1)
	assert.Equal(t, "Paracetamol", purchases.purchases[0].Items[0].ItemName, "line snapshots the item name")
}

func TestRecordPurchase_InsufficientStockRollsBack(t *testing.T) {
	uc, items, purchases := setup()

	okItem, err := uc.AddItem(context.Background(), dto.CreateInventoryItemRequest{
		SKU: "MED-001", Name: "Paracetamol", StockQty: 10, UnitPrice: dec("2.50"),
	})
	require.NoError(t, err)
	shortItem, err := uc.AddItem(context.Background(), dto.CreateInventoryItemRequest{
		SKU: "MED-002", Name: "Insulin", StockQty: 1, UnitPrice: dec("30"),
	})
	require.NoError(t, err)

	_, err = uc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		PatientID: "p-1",
		Items: []dto.PurchaseItemRequest{
			{ItemID: okItem.ID, Quantity: 2},
			{ItemID: shortItem.ID, Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// The first line's decrement must not survive the failed sale.
	it, _ := items.GetByID(context.Background(), okItem.ID)
	assert.Equal(t, 10, it.StockQty)
	assert.Empty(t, purchases.purchases)
}

func TestRecordPurchase_Validation(t *testing.T) {
	uc, _, _ := setup()

	_, err := uc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{PatientID: "p-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no items")

	_, err = uc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		PatientID: "p-1",
		Items:     []dto.PurchaseItemRequest{{ItemID: "x", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero quantity")
}

func TestListLowStock(t *testing.T) {
	uc, _, _ := setup()

	_, err := uc.AddItem(context.Background(), dto.CreateInventoryItemRequest{
		SKU: "MED-001", Name: "Paracetamol", StockQty: 3, LowStockThreshold: 5, UnitPrice: dec("2.50"),
	})
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), dto.CreateInventoryItemRequest{
		SKU: "MED-002", Name: "Gauze", StockQty: 50, LowStockThreshold: 5, UnitPrice: dec("0.80"),
	})
	require.NoError(t, err)

	low, err := uc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Paracetamol", low[0].Name)
}
