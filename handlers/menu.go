package handlers

import (
	"net/http"

	"food-order-api/store"

	"github.com/gin-gonic/gin"
)

type CreateMenuRequest struct {
	Restaurant string `json:"restaurant"`
	Food       string `json:"food"`
	Drink      string `json:"drink"`
}

type EditMenuRequest struct {
	ID         string  `json:"id" binding:"required"`
	Restaurant *string `json:"restaurant"`
	Food       *string `json:"food"`
	Drink      *string `json:"drink"`
}

// CreateMenu adds a menu entry (Admin only). A missing restaurant is
// rejected by the model.
func (h *Handler) CreateMenu(c *gin.Context) {
	var req CreateMenuRequest
	if !h.bind(c, &req) {
		return
	}
	menu, err := h.store.CreateMenu(c.Request.Context(), req.Restaurant, req.Food, req.Drink)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"menu": menu})
}

// GetMenu lists every menu entry (public).
func (h *Handler) GetMenu(c *gin.Context) {
	menus, err := h.store.ListMenus(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

func (h *Handler) EditMenu(c *gin.Context) {
	var req EditMenuRequest
	if !h.bind(c, &req) {
		return
	}
	menu, err := h.store.UpdateMenu(c.Request.Context(), req.ID, store.MenuPatch{
		Restaurant: req.Restaurant,
		Food:       req.Food,
		Drink:      req.Drink,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

func (h *Handler) DeleteMenu(c *gin.Context) {
	var req DeleteRequest
	if !h.bind(c, &req) {
		return
	}
	if err := h.store.DeleteMenu(c.Request.Context(), req.ID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu deleted", "id": req.ID})
}
