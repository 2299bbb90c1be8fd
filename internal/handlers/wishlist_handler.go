package handlers

import (
	"net/http"

	"glamor-shop/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: Wishlist contents ---
func (h *Handler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.Shop.Wishlist())
}

// --- POST: Add a product to the wishlist ---
// Adding the same product twice is a silent no-op.
func (h *Handler) AddToWishlist(c *gin.Context) {
	var req struct {
		ProductID int64 `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, found := h.Shop.ProductByID(req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	h.Shop.AddToWishlist(models.WishlistItem{Product: product})
	c.JSON(http.StatusOK, gin.H{"in_wishlist": true})
}

// --- DELETE: Remove a wishlist entry ---
func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	h.Shop.RemoveFromWishlist(id)
	c.JSON(http.StatusOK, gin.H{"in_wishlist": false})
}
