package services

import (
	"context"

	"store-service/internal/domain"
	"store-service/internal/repository"
)

type StoreService struct {
	repos repository.Repositories
}

func NewStoreService(repos repository.Repositories) *StoreService {
	return &StoreService{repos: repos}
}

func (s *StoreService) CreateStore(ctx context.Context, ownerID uint64, name, address string) (*domain.Store, error) {
	store := &domain.Store{
		OwnerID: ownerID,
		Name:    name,
		Address: address,
		Status:  domain.StoreClosed,
	}

	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		owner, err := tx.Members().FindByID(ownerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrMemberNotFound
		}
		existing, err := tx.Stores().FindByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateStoreName
		}
		return tx.Stores().Save(store)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) GetStore(ctx context.Context, id uint64) (*domain.Store, error) {
	store, err := s.repos.Stores().FindByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return store, nil
}

func (s *StoreService) ListByOwner(ctx context.Context, ownerID uint64) ([]domain.Store, error) {
	return s.repos.Stores().FindByOwner(ownerID)
}

func (s *StoreService) RenameStore(ctx context.Context, memberID, storeID uint64, name string) (*domain.Store, error) {
	var store *domain.Store
	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		st, err := ownedStore(tx, memberID, storeID)
		if err != nil {
			return err
		}
		existing, err := tx.Stores().FindByName(name)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != st.ID {
			return domain.ErrDuplicateStoreName
		}
		st.Name = name
		if err := tx.Stores().Update(st); err != nil {
			return err
		}
		store = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) UpdateAddress(ctx context.Context, memberID, storeID uint64, address string) (*domain.Store, error) {
	var store *domain.Store
	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		st, err := ownedStore(tx, memberID, storeID)
		if err != nil {
			return err
		}
		st.Address = address
		if err := tx.Stores().Update(st); err != nil {
			return err
		}
		store = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// ToggleStatus flips the store between open and close. Orders already
// seated keep running either way.
func (s *StoreService) ToggleStatus(ctx context.Context, memberID, storeID uint64) (*domain.Store, error) {
	var store *domain.Store
	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		st, err := ownedStore(tx, memberID, storeID)
		if err != nil {
			return err
		}
		st.ToggleStatus()
		if err := tx.Stores().Update(st); err != nil {
			return err
		}
		store = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) CreateTable(ctx context.Context, memberID, storeID uint64, x, y int) (*domain.StoreTable, error) {
	table := &domain.StoreTable{
		StoreID: storeID,
		XPos:    x,
		YPos:    y,
		Status:  domain.TableVacant,
	}
	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		if _, err := ownedStore(tx, memberID, storeID); err != nil {
			return err
		}
		return tx.Tables().Save(table)
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func (s *StoreService) ListTables(ctx context.Context, storeID uint64) ([]domain.StoreTable, error) {
	store, err := s.repos.Stores().FindByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return s.repos.Tables().FindByStore(storeID)
}

// ownedStore resolves a store and checks the acting member owns it.
func ownedStore(tx repository.Repositories, memberID, storeID uint64) (*domain.Store, error) {
	store, err := tx.Stores().FindByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	if !store.IsOwnedBy(memberID) {
		return nil, domain.ErrNotOwner
	}
	return store, nil
}
