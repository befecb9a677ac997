package repository

import (
	"context"

	"store-service/internal/domain"
)

// Repositories bundles the entity repositories bound to one data source
// or to one open transaction.
type Repositories interface {
	Members() MemberRepository
	Stores() StoreRepository
	Items() ItemRepository
	Tables() TableRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Payments() PaymentRepository

	// Atomic runs fn against repositories bound to a single
	// transaction. Any error returned by fn rolls back every write
	// made inside it.
	Atomic(ctx context.Context, fn func(tx Repositories) error) error
}

// Find methods return (nil, nil) when no row matches; callers translate
// that into the matching not-found error.
type MemberRepository interface {
	Save(member *domain.Member) error
	Update(member *domain.Member) error
	FindByID(id uint64) (*domain.Member, error)
	FindByEmail(email string) (*domain.Member, error)
}

type StoreRepository interface {
	Save(store *domain.Store) error
	Update(store *domain.Store) error
	FindByID(id uint64) (*domain.Store, error)
	FindByName(name string) (*domain.Store, error)
	FindByOwner(ownerID uint64) ([]domain.Store, error)
}

type ItemRepository interface {
	Save(item *domain.Item) error
	Update(item *domain.Item) error
	// FindByID resolves active items only; soft-deleted rows come back
	// as (nil, nil).
	FindByID(id uint64) (*domain.Item, error)
	// FindByIDForUpdate locks the item row until the surrounding
	// transaction ends. Use for every stock adjustment. Resolves
	// soft-deleted rows too: a deleted item can still take stock back.
	FindByIDForUpdate(id uint64) (*domain.Item, error)
	FindActiveByName(storeID uint64, name string) (*domain.Item, error)
	FindActiveByStore(storeID uint64) ([]domain.Item, error)
}

type TableRepository interface {
	Save(table *domain.StoreTable) error
	Update(table *domain.StoreTable) error
	FindByID(id uint64) (*domain.StoreTable, error)
	FindByStore(storeID uint64) ([]domain.StoreTable, error)
}

type OrderRepository interface {
	Save(order *domain.Order) error
	Update(order *domain.Order) error
	FindByID(id uint64) (*domain.Order, error)
	FindActiveByTable(tableID uint64) (*domain.Order, error)
}

type OrderItemRepository interface {
	Save(line *domain.OrderItem) error
	Update(line *domain.OrderItem) error
	FindByID(id uint64) (*domain.OrderItem, error)
	// FindOrderedLine locates the mergeable line for an exact
	// (item, price) pair, skipping deleted lines.
	FindOrderedLine(orderID, itemID uint64, price int64) (*domain.OrderItem, error)
	// FindOrderedByOrder lists live lines oldest first.
	FindOrderedByOrder(orderID uint64) ([]domain.OrderItem, error)
}

type PaymentRepository interface {
	Save(payment *domain.Payment) error
	Update(payment *domain.Payment) error
	FindByID(id uint64) (*domain.Payment, error)
	FindActiveByOrder(orderID uint64) (*domain.Payment, error)
	SaveMethod(method *domain.PaymentMethod) error
	FindMethods(paymentID uint64) ([]domain.PaymentMethod, error)
}
