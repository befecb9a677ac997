package domain

import "errors"

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrStoreNotFound     = errors.New("store not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrTableNotFound     = errors.New("table not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrPaymentNotFound   = errors.New("payment not found")

	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateStoreName = errors.New("store name already taken")
	ErrDuplicateItemName  = errors.New("item name already in catalog")

	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrStoreClosed          = errors.New("store is closed")
	ErrOrderAlreadyExists   = errors.New("table already has an active order")
	ErrOrderNotUsing        = errors.New("order is not accepting changes")
	ErrPaymentAlreadyExists = errors.New("order already has an active payment")
	ErrNoOrderItems         = errors.New("order has no ordered items")

	ErrNotOwner              = errors.New("member does not own this store")
	ErrPasswordMismatch      = errors.New("password does not match")
	ErrPaymentAmountMismatch = errors.New("payment methods do not reconcile with amount")
)
