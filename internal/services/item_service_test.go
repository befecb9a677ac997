package services

import (
	"context"
	"testing"

	"store-service/internal/domain"
	"store-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestItemService_CreateItem(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockRepos)
		expectedError error
	}{
		{
			name: "adds to the catalog",
			setupMocks: func(r *mocks.MockRepos) {
				r.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreOpen), nil)
				r.MockItems.On("FindActiveByName", TestStoreID, "Americano").Return(nil, nil)
				r.MockItems.On("Save", mock.AnythingOfType("*domain.Item")).Return(nil)
			},
		},
		{
			name: "duplicate active name",
			setupMocks: func(r *mocks.MockRepos) {
				r.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreOpen), nil)
				r.MockItems.On("FindActiveByName", TestStoreID, "Americano").Return(CreateMockItem(2, TestStoreID, 4000, 10), nil)
			},
			expectedError: domain.ErrDuplicateItemName,
		},
		{
			name: "closed store takes no items",
			setupMocks: func(r *mocks.MockRepos) {
				r.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreClosed), nil)
			},
			expectedError: domain.ErrStoreClosed,
		},
		{
			name: "not the owner",
			setupMocks: func(r *mocks.MockRepos) {
				r.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, 42, domain.StoreOpen), nil)
			},
			expectedError: domain.ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := mocks.NewRepos()
			tt.setupMocks(repos)

			service := NewItemService(repos)
			item, err := service.CreateItem(context.Background(), TestMemberID, TestStoreID, "Americano", 4000, 100)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.ItemOnSale, item.Status)
				assert.Equal(t, int64(100), item.Stock)
			}
			repos.AssertExpectations(t)
		})
	}
}

func TestItemService_RemoveStock_Floor(t *testing.T) {
	repos := mocks.NewRepos()
	item := CreateMockItem(TestItemID, TestStoreID, TestPrice, 3)
	repos.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreOpen), nil)
	repos.MockItems.On("FindByIDForUpdate", TestItemID).Return(item, nil)

	service := NewItemService(repos)
	_, err := service.RemoveStock(context.Background(), TestMemberID, TestStoreID, TestItemID, 4)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(3), item.Stock)
	repos.AssertExpectations(t)
}

func TestItemService_Restock(t *testing.T) {
	repos := mocks.NewRepos()
	item := CreateMockItem(TestItemID, TestStoreID, TestPrice, 3)
	repos.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreOpen), nil)
	repos.MockItems.On("FindByIDForUpdate", TestItemID).Return(item, nil)
	repos.MockItems.On("Update", item).Return(nil)

	service := NewItemService(repos)
	updated, err := service.Restock(context.Background(), TestMemberID, TestStoreID, TestItemID, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), updated.Stock)
	repos.AssertExpectations(t)
}

func TestItemService_DeleteItem(t *testing.T) {
	repos := mocks.NewRepos()
	item := CreateMockItem(TestItemID, TestStoreID, TestPrice, 3)
	repos.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreOpen), nil)
	repos.MockItems.On("FindByIDForUpdate", TestItemID).Return(item, nil)
	repos.MockItems.On("Update", item).Return(nil)

	service := NewItemService(repos)
	err := service.DeleteItem(context.Background(), TestMemberID, TestStoreID, TestItemID)

	assert.NoError(t, err)
	assert.Equal(t, domain.ItemDeleted, item.Status)
	repos.AssertExpectations(t)
}

func TestItemService_DeleteItem_AlreadyDeleted(t *testing.T) {
	repos := mocks.NewRepos()
	item := CreateMockItem(TestItemID, TestStoreID, TestPrice, 3)
	item.Status = domain.ItemDeleted
	repos.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreOpen), nil)
	repos.MockItems.On("FindByIDForUpdate", TestItemID).Return(item, nil)

	service := NewItemService(repos)
	err := service.DeleteItem(context.Background(), TestMemberID, TestStoreID, TestItemID)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	repos.AssertExpectations(t)
}

func TestItemService_Menu(t *testing.T) {
	repos := mocks.NewRepos()
	repos.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreOpen), nil)
	repos.MockItems.On("FindActiveByStore", TestStoreID).Return([]domain.Item{
		*CreateMockItem(1, TestStoreID, 4000, 10),
		*CreateMockItem(2, TestStoreID, 5500, 0),
	}, nil)

	service := NewItemService(repos)
	menu, err := service.Menu(context.Background(), TestStoreID)

	assert.NoError(t, err)
	assert.Len(t, menu, 2)
	assert.Equal(t, int64(4000), menu[0].Price)
	assert.Equal(t, int64(0), menu[1].Stock)
	repos.AssertExpectations(t)
}
