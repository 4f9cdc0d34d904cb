package repository

import "context"

// TxRepos are repository instances bound to a single transaction.
type TxRepos struct {
	Inventory InventoryRepository
	Purchases PurchaseRepository
}

// TxRunner executes fn inside one database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(repos TxRepos) error) error
}
