package handlers

import (
	"context"
	"net/http"
	"strings"

	"food-order-api/apperr"
	"food-order-api/models"
	"food-order-api/store"

	"github.com/gin-gonic/gin"
)

type MakeOrderRequest struct {
	Name       string `json:"name"`
	Restaurant string `json:"restaurant"`
	Food       string `json:"food"`
	Drink      string `json:"drink"`
}

type EditOrderRequest struct {
	ID         string  `json:"id" binding:"required"`
	Restaurant *string `json:"restaurant"`
	Food       *string `json:"food"`
	Drink      *string `json:"drink"`
}

type DeleteRequest struct {
	ID string `json:"id" binding:"required"`
}

// MakeOrder places an order for the signed-in user. The owner is the name
// from the body, falling back to the account name.
func (h *Handler) MakeOrder(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req MakeOrderRequest
	if !h.bind(c, &req) {
		return
	}

	owner := strings.TrimSpace(req.Name)
	if owner == "" {
		owner = user.Name
	}
	order := &models.Order{
		UserID:     user.ID,
		Owner:      owner,
		Restaurant: req.Restaurant,
		Food:       req.Food,
		Drink:      req.Drink,
	}
	if err := h.store.CreateOrder(c.Request.Context(), order); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// GetOrders lists the signed-in user's orders.
func (h *Handler) GetOrders(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	orders, err := h.store.ListOrdersByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) EditOrder(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req EditOrderRequest
	if !h.bind(c, &req) {
		return
	}
	if err := h.checkOrderAccess(c.Request.Context(), user, req.ID); err != nil {
		h.respondError(c, err)
		return
	}

	order, err := h.store.UpdateOrder(c.Request.Context(), req.ID, store.OrderPatch{
		Restaurant: req.Restaurant,
		Food:       req.Food,
		Drink:      req.Drink,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	var req DeleteRequest
	if !h.bind(c, &req) {
		return
	}
	if err := h.checkOrderAccess(c.Request.Context(), user, req.ID); err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.store.DeleteOrder(c.Request.Context(), req.ID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted", "id": req.ID})
}

// checkOrderAccess is a no-op unless ownership enforcement is on; then
// only the placing user or an Admin may touch the order.
func (h *Handler) checkOrderAccess(ctx context.Context, user *models.User, orderID string) error {
	if !h.enforceOwnership || user.IsAdmin() {
		return nil
	}
	order, err := h.store.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != user.ID {
		return apperr.ErrForbidden
	}
	return nil
}
