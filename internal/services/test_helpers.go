package services

import (
	"time"

	"store-service/internal/domain"
)

func CreateMockStore(id, ownerID uint64, status domain.StoreStatus) *domain.Store {
	return &domain.Store{
		ID:      id,
		OwnerID: ownerID,
		Name:    "Test Store",
		Address: "1 Test Street",
		Status:  status,
	}
}

func CreateMockItem(id, storeID uint64, price, stock int64) *domain.Item {
	return &domain.Item{
		ID:      id,
		StoreID: storeID,
		Name:    "Test Item",
		Price:   price,
		Stock:   stock,
		Status:  domain.ItemOnSale,
	}
}

func CreateMockTable(id, storeID uint64) *domain.StoreTable {
	return &domain.StoreTable{
		ID:      id,
		StoreID: storeID,
		Status:  domain.TableVacant,
	}
}

func CreateMockOrder(id, storeID, tableID uint64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:        id,
		StoreID:   storeID,
		TableID:   &tableID,
		Status:    status,
		StartTime: time.Now(),
	}
}

func CreateMockLine(id, orderID, itemID uint64, price, count int64) *domain.OrderItem {
	now := time.Now()
	return &domain.OrderItem{
		ID:          id,
		StoreID:     TestStoreID,
		OrderID:     orderID,
		ItemID:      itemID,
		ItemName:    "Test Item",
		Price:       price,
		Count:       count,
		Status:      domain.OrderItemOrdered,
		OrderedTime: now,
		UpdatedTime: now,
	}
}

const (
	TestMemberID = uint64(1)
	TestStoreID  = uint64(1)
	TestTableID  = uint64(1)
	TestOrderID  = uint64(1)
	TestItemID   = uint64(1)
	TestLineID   = uint64(1)
	TestPrice    = int64(10000)
	TestStock    = int64(100)
)
