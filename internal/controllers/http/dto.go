package http

type RegisterMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Address  string `json:"address"`
}

type UpdateAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type CreateStoreRequest struct {
	MemberID uint64 `json:"memberId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
}

type RenameStoreRequest struct {
	MemberID uint64 `json:"memberId" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type StoreAddressRequest struct {
	MemberID uint64 `json:"memberId" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type ToggleStoreRequest struct {
	MemberID uint64 `json:"memberId" binding:"required"`
}

type CreateTableRequest struct {
	MemberID uint64 `json:"memberId" binding:"required"`
	XPos     int    `json:"xPos"`
	YPos     int    `json:"yPos"`
}

type CreateItemRequest struct {
	MemberID uint64 `json:"memberId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
	Stock    int64  `json:"stock" binding:"min=0"`
}

type UpdateItemNameRequest struct {
	MemberID uint64 `json:"memberId" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type UpdateItemPriceRequest struct {
	MemberID uint64 `json:"memberId" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
}

type AdjustStockRequest struct {
	MemberID uint64 `json:"memberId" binding:"required"`
	Count    int64  `json:"count" binding:"required,min=1"`
}

type DeleteItemRequest struct {
	MemberID uint64 `json:"memberId" binding:"required"`
}

type OpenOrderRequest struct {
	TableID uint64 `json:"tableId" binding:"required"`
}

type AddOrderItemRequest struct {
	ItemID uint64 `json:"itemId" binding:"required"`
	Price  int64  `json:"price" binding:"required,min=1"`
	Count  int64  `json:"count" binding:"required,min=1"`
}

type UpdateLinePriceRequest struct {
	Price int64 `json:"price" binding:"required,min=1"`
}

type UpdateLineCountRequest struct {
	Count int64 `json:"count" binding:"required,min=1"`
}

type StartPaymentRequest struct {
	OrderID uint64 `json:"orderId" binding:"required"`
}

type AddPaymentMethodRequest struct {
	Type   string `json:"type" binding:"required,oneof=cash card"`
	Amount int64  `json:"amount" binding:"required,min=1"`
}
