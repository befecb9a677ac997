package mysql

import (
	"context"

	"store-service/internal/repository"

	"gorm.io/gorm"
)

type repos struct {
	db *gorm.DB
}

func NewRepositories(db *gorm.DB) repository.Repositories {
	return &repos{db: db}
}

func (r *repos) Members() repository.MemberRepository       { return &memberRepo{db: r.db} }
func (r *repos) Stores() repository.StoreRepository         { return &storeRepo{db: r.db} }
func (r *repos) Items() repository.ItemRepository           { return &itemRepo{db: r.db} }
func (r *repos) Tables() repository.TableRepository         { return &tableRepo{db: r.db} }
func (r *repos) Orders() repository.OrderRepository         { return &orderRepo{db: r.db} }
func (r *repos) OrderItems() repository.OrderItemRepository { return &orderItemRepo{db: r.db} }
func (r *repos) Payments() repository.PaymentRepository     { return &paymentRepo{db: r.db} }

func (r *repos) Atomic(ctx context.Context, fn func(tx repository.Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repos{db: tx})
	})
}
