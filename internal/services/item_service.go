package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"store-service/internal/domain"
	"store-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

const menuCacheTTL = time.Minute

type ItemService struct {
	repos       repository.Repositories
	redisClient *redis.Client
}

func NewItemService(repos repository.Repositories) *ItemService {
	return &ItemService{repos: repos}
}

func (s *ItemService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *ItemService) CreateItem(ctx context.Context, memberID, storeID uint64, name string, price, stock int64) (*domain.Item, error) {
	item := &domain.Item{
		StoreID: storeID,
		Name:    name,
		Price:   price,
		Stock:   stock,
		Status:  domain.ItemOnSale,
	}

	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		store, err := ownedStore(tx, memberID, storeID)
		if err != nil {
			return err
		}
		if !store.IsOpen() {
			return domain.ErrStoreClosed
		}
		existing, err := tx.Items().FindActiveByName(storeID, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateItemName
		}
		return tx.Items().Save(item)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateMenu(ctx, storeID)
	return item, nil
}

func (s *ItemService) UpdateItemName(ctx context.Context, memberID, storeID, itemID uint64, name string) (*domain.Item, error) {
	return s.updateItem(ctx, memberID, storeID, itemID, func(tx repository.Repositories, item *domain.Item) error {
		existing, err := tx.Items().FindActiveByName(storeID, name)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != item.ID {
			return domain.ErrDuplicateItemName
		}
		item.Name = name
		return nil
	})
}

// UpdateItemPrice changes the catalog price. Lines already ordered keep
// their snapshot price.
func (s *ItemService) UpdateItemPrice(ctx context.Context, memberID, storeID, itemID uint64, price int64) (*domain.Item, error) {
	return s.updateItem(ctx, memberID, storeID, itemID, func(tx repository.Repositories, item *domain.Item) error {
		item.Price = price
		return nil
	})
}

// Restock puts n units on the shelf.
func (s *ItemService) Restock(ctx context.Context, memberID, storeID, itemID uint64, n int64) (*domain.Item, error) {
	return s.updateItem(ctx, memberID, storeID, itemID, func(tx repository.Repositories, item *domain.Item) error {
		item.IncreaseStock(n)
		return nil
	})
}

// RemoveStock takes n units off the shelf, subject to the zero floor.
func (s *ItemService) RemoveStock(ctx context.Context, memberID, storeID, itemID uint64, n int64) (*domain.Item, error) {
	return s.updateItem(ctx, memberID, storeID, itemID, func(tx repository.Repositories, item *domain.Item) error {
		return item.DecreaseStock(n)
	})
}

// DeleteItem soft-deletes: the row stays so existing order lines keep
// their reference, but catalog queries stop seeing it.
func (s *ItemService) DeleteItem(ctx context.Context, memberID, storeID, itemID uint64) error {
	_, err := s.updateItem(ctx, memberID, storeID, itemID, func(tx repository.Repositories, item *domain.Item) error {
		item.Status = domain.ItemDeleted
		return nil
	})
	return err
}

func (s *ItemService) updateItem(ctx context.Context, memberID, storeID, itemID uint64, mutate func(repository.Repositories, *domain.Item) error) (*domain.Item, error) {
	var item *domain.Item
	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		if _, err := ownedStore(tx, memberID, storeID); err != nil {
			return err
		}
		it, err := tx.Items().FindByIDForUpdate(itemID)
		if err != nil {
			return err
		}
		if it == nil || it.IsDeleted() || it.StoreID != storeID {
			return domain.ErrItemNotFound
		}
		if err := mutate(tx, it); err != nil {
			return err
		}
		if err := tx.Items().Update(it); err != nil {
			return err
		}
		item = it
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateMenu(ctx, storeID)
	return item, nil
}

// Menu returns the active catalog of a store, read through redis when a
// client is configured.
func (s *ItemService) Menu(ctx context.Context, storeID uint64) ([]ItemSummary, error) {
	cacheKey := menuCacheKey(storeID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var menu []ItemSummary
			if err := json.Unmarshal([]byte(cached), &menu); err == nil {
				return menu, nil
			}
		}
	}

	store, err := s.repos.Stores().FindByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}

	items, err := s.repos.Items().FindActiveByStore(storeID)
	if err != nil {
		return nil, err
	}

	menu := make([]ItemSummary, 0, len(items))
	for _, it := range items {
		menu = append(menu, ItemSummary{
			ID:    it.ID,
			Name:  it.Name,
			Price: it.Price,
			Stock: it.Stock,
		})
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(menu); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, menuCacheTTL)
		}
	}

	return menu, nil
}

// WarmupMenuCache primes the menu cache for a set of stores at boot.
func (s *ItemService) WarmupMenuCache(ctx context.Context, storeIDs []uint64) error {
	if s.redisClient == nil {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, id := range storeIDs {
		id := id
		g.Go(func() error {
			if _, err := s.Menu(gctx, id); err != nil {
				log.Printf("Failed to warm up menu for store %d: %v", id, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *ItemService) invalidateMenu(ctx context.Context, storeID uint64) {
	if s.redisClient == nil {
		return
	}
	s.redisClient.Del(ctx, menuCacheKey(storeID))
}

func menuCacheKey(storeID uint64) string {
	return fmt.Sprintf("menu:store:%d", storeID)
}
