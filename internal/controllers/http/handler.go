package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"store-service/internal/domain"
	"store-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type Handler struct {
	members    *services.MemberService
	stores     *services.StoreService
	items      *services.ItemService
	orders     *services.OrderService
	orderItems *services.OrderItemService
	payments   *services.PaymentService
	rdb        *redis.Client
}

func NewHandler(
	members *services.MemberService,
	stores *services.StoreService,
	items *services.ItemService,
	orders *services.OrderService,
	orderItems *services.OrderItemService,
	payments *services.PaymentService,
	rdb *redis.Client,
) *Handler {
	return &Handler{
		members:    members,
		stores:     stores,
		items:      items,
		orders:     orders,
		orderItems: orderItems,
		payments:   payments,
		rdb:        rdb,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/members", h.RegisterMember)
	r.GET("/members/:memberId", h.GetMember)
	r.PUT("/members/:memberId/address", h.UpdateMemberAddress)
	r.PUT("/members/:memberId/password", h.ChangePassword)
	r.GET("/members/:memberId/stores", h.ListMemberStores)

	r.POST("/stores", h.CreateStore)
	r.GET("/stores/:storeId", h.GetStore)
	r.PUT("/stores/:storeId/name", h.RenameStore)
	r.PUT("/stores/:storeId/address", h.UpdateStoreAddress)
	r.POST("/stores/:storeId/status/toggle", h.ToggleStoreStatus)

	r.POST("/stores/:storeId/tables", h.CreateTable)
	r.GET("/stores/:storeId/tables", h.ListTables)

	r.POST("/stores/:storeId/items", h.CreateItem)
	r.GET("/stores/:storeId/menu", h.GetMenu)
	r.PUT("/stores/:storeId/items/:itemId/name", h.UpdateItemName)
	r.PUT("/stores/:storeId/items/:itemId/price", h.UpdateItemPrice)
	r.POST("/stores/:storeId/items/:itemId/restock", h.RestockItem)
	r.POST("/stores/:storeId/items/:itemId/remove-stock", h.RemoveItemStock)
	r.DELETE("/stores/:storeId/items/:itemId", h.DeleteItem)

	r.POST("/stores/:storeId/orders", h.OpenOrder)
	r.GET("/orders/:orderId", h.GetOrder)
	r.POST("/stores/:storeId/orders/:orderId/items", h.AddOrderItem)
	r.PUT("/stores/:storeId/order-items/:lineId/price", h.UpdateLinePrice)
	r.PUT("/stores/:storeId/order-items/:lineId/count", h.UpdateLineCount)
	r.DELETE("/stores/:storeId/order-items/:lineId", h.DeleteOrderItem)

	r.POST("/stores/:storeId/payments", h.StartPayment)
	r.POST("/payments/:paymentId/methods", h.AddPaymentMethod)
	r.POST("/payments/:paymentId/complete", h.CompletePayment)
	r.POST("/payments/:paymentId/cancel", h.CancelPayment)
}

func (h *Handler) RegisterMember(c *gin.Context) {
	var req RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.members.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Address)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *Handler) GetMember(c *gin.Context) {
	id, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	member, err := h.members.GetMember(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *Handler) UpdateMemberAddress(c *gin.Context) {
	id, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := h.members.UpdateAddress(c.Request.Context(), id, req.Address)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	id, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.members.ChangePassword(c.Request.Context(), id, req.OldPassword, req.NewPassword); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListMemberStores(c *gin.Context) {
	id, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	stores, err := h.stores.ListByOwner(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (h *Handler) CreateStore(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store, err := h.stores.CreateStore(c.Request.Context(), req.MemberID, req.Name, req.Address)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, store)
}

func (h *Handler) GetStore(c *gin.Context) {
	id, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	store, err := h.stores.GetStore(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *Handler) RenameStore(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	var req RenameStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store, err := h.stores.RenameStore(c.Request.Context(), req.MemberID, storeID, req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *Handler) UpdateStoreAddress(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	var req StoreAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store, err := h.stores.UpdateAddress(c.Request.Context(), req.MemberID, storeID, req.Address)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *Handler) ToggleStoreStatus(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	var req ToggleStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store, err := h.stores.ToggleStatus(c.Request.Context(), req.MemberID, storeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *Handler) CreateTable(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	table, err := h.stores.CreateTable(c.Request.Context(), req.MemberID, storeID, req.XPos, req.YPos)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (h *Handler) ListTables(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	tables, err := h.stores.ListTables(c.Request.Context(), storeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *Handler) CreateItem(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.items.CreateItem(c.Request.Context(), req.MemberID, storeID, req.Name, req.Price, req.Stock)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) GetMenu(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	menu, err := h.items.Menu(c.Request.Context(), storeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

func (h *Handler) UpdateItemName(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req UpdateItemNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.items.UpdateItemName(c.Request.Context(), req.MemberID, storeID, itemID, req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateItemPrice(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req UpdateItemPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.items.UpdateItemPrice(c.Request.Context(), req.MemberID, storeID, itemID, req.Price)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) RestockItem(c *gin.Context) {
	h.adjustStock(c, func(ctx context.Context, memberID, storeID, itemID uint64, count int64) (*domain.Item, error) {
		return h.items.Restock(ctx, memberID, storeID, itemID, count)
	})
}

func (h *Handler) RemoveItemStock(c *gin.Context) {
	h.adjustStock(c, func(ctx context.Context, memberID, storeID, itemID uint64, count int64) (*domain.Item, error) {
		return h.items.RemoveStock(ctx, memberID, storeID, itemID, count)
	})
}

func (h *Handler) adjustStock(c *gin.Context, adjust func(ctx context.Context, memberID, storeID, itemID uint64, count int64) (*domain.Item, error)) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := adjust(c.Request.Context(), req.MemberID, storeID, itemID, req.Count)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	var req DeleteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.items.DeleteItem(c.Request.Context(), req.MemberID, storeID, itemID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) OpenOrder(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	var req OpenOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orders.OpenOrder(c.Request.Context(), storeID, req.TableID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) GetOrder(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	cacheKey := orderCacheKey(orderID)
	if h.rdb != nil {
		if b, err := h.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var summary services.OrderSummary
			if err := json.Unmarshal([]byte(b), &summary); err == nil {
				c.JSON(http.StatusOK, summary)
				return
			}
		}
	}

	summary, err := h.orders.GetOrder(ctx, orderID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(summary); err == nil {
			h.rdb.Set(ctx, cacheKey, data, 10*time.Second)
		}
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) AddOrderItem(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	var req AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	line, err := h.orderItems.AddOrderItem(c.Request.Context(), storeID, orderID, req.ItemID, req.Price, req.Count)
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.invalidateOrder(orderID)
	c.JSON(http.StatusCreated, line)
}

func (h *Handler) UpdateLinePrice(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	lineID, ok := pathID(c, "lineId")
	if !ok {
		return
	}
	var req UpdateLinePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	line, err := h.orderItems.UpdatePrice(c.Request.Context(), storeID, lineID, req.Price)
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.invalidateOrder(line.OrderID)
	c.JSON(http.StatusOK, line)
}

func (h *Handler) UpdateLineCount(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	lineID, ok := pathID(c, "lineId")
	if !ok {
		return
	}
	var req UpdateLineCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	line, err := h.orderItems.UpdateCount(c.Request.Context(), storeID, lineID, req.Count)
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.invalidateOrder(line.OrderID)
	c.JSON(http.StatusOK, line)
}

func (h *Handler) DeleteOrderItem(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	lineID, ok := pathID(c, "lineId")
	if !ok {
		return
	}
	if err := h.orderItems.DeleteOrderItem(c.Request.Context(), storeID, lineID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) StartPayment(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	var req StartPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := h.payments.StartPayment(c.Request.Context(), storeID, req.OrderID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *Handler) AddPaymentMethod(c *gin.Context) {
	paymentID, ok := pathID(c, "paymentId")
	if !ok {
		return
	}
	var req AddPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	method, err := h.payments.AddMethod(c.Request.Context(), paymentID, domain.PaymentMethodType(req.Type), req.Amount)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, method)
}

func (h *Handler) CompletePayment(c *gin.Context) {
	paymentID, ok := pathID(c, "paymentId")
	if !ok {
		return
	}
	payment, err := h.payments.CompletePayment(c.Request.Context(), paymentID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.invalidateOrder(payment.OrderID)
	c.JSON(http.StatusOK, payment)
}

func (h *Handler) CancelPayment(c *gin.Context) {
	paymentID, ok := pathID(c, "paymentId")
	if !ok {
		return
	}
	if err := h.payments.CancelPayment(c.Request.Context(), paymentID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) invalidateOrder(orderID uint64) {
	if h.rdb == nil {
		return
	}
	h.rdb.Del(context.Background(), orderCacheKey(orderID))
}

func orderCacheKey(orderID uint64) string {
	return "order:" + strconv.FormatUint(orderID, 10)
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrStoreNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrTableNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrOrderItemNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateStoreName),
		errors.Is(err, domain.ErrDuplicateItemName),
		errors.Is(err, domain.ErrStoreClosed),
		errors.Is(err, domain.ErrOrderAlreadyExists),
		errors.Is(err, domain.ErrOrderNotUsing),
		errors.Is(err, domain.ErrPaymentAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrNoOrderItems),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrPaymentAmountMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
